// Package logging configures log/slog for aicctl and the catalog packages.
//
// Every logger writes JSON lines to stderr and carries two fixed attributes,
// module and version, so lines from different builds can be told apart. At
// debug level the source location is added as well.
//
// Levels are parsed case-insensitively from debug, info, warn (or warning)
// and error. Anything else, including an empty string, means info.
//
// The CLI installs the default logger once, before any command runs:
//
//	logging.SetDefaultStructuredLoggerWithLevel("aicctl", version, cmd.String("log-level"))
//
// Library code then logs through slog directly:
//
//	slog.Warn("skipping catalog definition", "document", "recipes.yaml", "index", 3)
//
// SetDefaultStructuredLogger reads the level from LOG_LEVEL instead, for
// programs without flags:
//
//	LOG_LEVEL=debug aicctl recipes --item Ferrium
//
// A catalog load at info level produces a line like:
//
//	{"time":"2025-01-15T10:30:00Z","level":"INFO","msg":"catalog loaded","module":"aicctl","version":"v1.0.0","load_id":"…","items":96,"machines":34,"recipes":73,"problems":0}
//
// NewLogLogger adapts slog for APIs that still take a *log.Logger.
package logging
