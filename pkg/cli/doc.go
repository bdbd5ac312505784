// Package cli implements the aicctl command-line interface for browsing and
// validating the production chain catalog.
//
// # Commands
//
// items - List items:
//
//	aicctl items [--fluid]
//
// machines - List machines with footprint, cycle time, slots and power:
//
//	aicctl machines [--region "Valley IV"|Wuling]
//
// recipes - List recipes, filtered through the output and machine indexes:
//
//	aicctl recipes [--item NAME] [--machine NAME]
//
// validate - Load the catalog and print a load report:
//
//	aicctl validate
//
// # Flags
//
//	--data, -d     Directory whose catalog documents replace the embedded ones
//	--log-level    Log level (debug, info, warn, error), default info
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: table, json, yaml (default: table)
//	--version, -v  Show version information
//
// Names in item and machine listings are sorted with English collation,
// ignoring case. Recipe listings keep catalog order.
//
// # Environment Variables
//
//	AIC_DATA_DIR   Same as --data
//	LOG_LEVEL      Same as --log-level
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unreadable catalog)
//	2  Context canceled or timeout
//	3  validate found skipped definitions
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/aic-catalog/pkg/cli.version=1.0.0'"
package cli
