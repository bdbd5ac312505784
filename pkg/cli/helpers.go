/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mchmarny/aic-catalog/pkg/catalog"
	"github.com/mchmarny/aic-catalog/pkg/defaults"
	"github.com/mchmarny/aic-catalog/pkg/serializer"
)

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

// loadCatalog loads the embedded catalog, layered under --data when set.
func loadCatalog(ctx context.Context, cmd *cli.Command) (*catalog.Result, error) {
	dir := cmd.String("data")
	if dir == "" {
		return catalog.Default(ctx)
	}

	provider, err := catalog.NewDataProvider(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog directory %q: %w", dir, err)
	}
	return catalog.Load(ctx, provider)
}

// writeOutput serializes v to --output in --format.
func writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	if err := ser.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	return nil
}

// withCommandTimeout bounds a single command invocation.
func withCommandTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaults.CLICommandTimeout)
}

// sortByName orders s by name using English collation, ignoring case.
func sortByName[T any](s []T, name func(T) string) {
	c := collate.New(language.English, collate.IgnoreCase)
	slices.SortStableFunc(s, func(a, b T) int {
		return c.CompareString(name(a), name(b))
	})
}
