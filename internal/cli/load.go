package cli

import (
	"context"
	"fmt"

	"github.com/ralt/pkginfo/internal/input"
	"github.com/ralt/pkginfo/internal/models"
	"github.com/ralt/pkginfo/internal/parser"
	"github.com/ralt/pkginfo/internal/parser/pacman"
	"github.com/ralt/pkginfo/internal/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// addInputFlags registers the flags shared by commands reading a capture
func addInputFlags(cmd *cobra.Command, config *models.QueryConfig) {
	cmd.Flags().StringVarP(&config.InputPath, "input", "i", input.Stdin, "Query capture to read (- for stdin, gzip/zstd/xz accepted)")
	cmd.Flags().StringVarP(&config.Format, "format", "f", string(render.FormatTable), "Output format (table, json, yaml)")
	cmd.Flags().StringVar(&config.Tool, "tool", "pacman", "Query tool that produced the capture")
	cmd.Flags().BoolVar(&config.Strict, "strict", false, "Fail on the first malformed package instead of skipping it")
}

func validateConfig(config *models.QueryConfig) error {
	if config.InputPath == "" {
		config.InputPath = input.Stdin
	}

	if config.Format == "" {
		config.Format = string(render.FormatTable)
	}
	if _, err := render.ParseFormat(config.Format); err != nil {
		return &models.PkgInfoError{
			Type: models.ErrInvalidConfig,
			Err:  err,
		}
	}

	if _, err := parser.ParseQueryTool(config.Tool); err != nil {
		return &models.PkgInfoError{
			Type: models.ErrInvalidConfig,
			Err:  err,
		}
	}

	if config.Explicit && config.Deps {
		return &models.PkgInfoError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("--explicit and --deps are mutually exclusive"),
		}
	}

	return nil
}

// newParser returns the parser for the configured query tool
func newParser(config *models.QueryConfig) (parser.Parser, error) {
	tool, err := parser.ParseQueryTool(config.Tool)
	if err != nil {
		return nil, err
	}

	parsers := map[parser.QueryTool]parser.Parser{
		parser.ToolPacman: pacman.New(
			pacman.WithStrict(config.Strict),
			pacman.WithLogger(logrus.WithField("tool", tool.String())),
		),
	}

	p, ok := parsers[tool]
	if !ok {
		return nil, fmt.Errorf("no parser for query tool: %s", tool)
	}
	return p, nil
}

// loadPackages reads the capture and parses it. In lenient mode block
// failures are logged and the good records returned.
func loadPackages(ctx context.Context, config *models.QueryConfig) ([]models.PackageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logrus.Debugf("Reading capture: %s", config.InputPath)
	text, err := input.ReadAll(config.InputPath)
	if err != nil {
		return nil, err
	}

	p, err := newParser(config)
	if err != nil {
		return nil, &models.PkgInfoError{
			Type: models.ErrInvalidConfig,
			Err:  err,
		}
	}

	records, err := p.ParsePackages(text)
	if err != nil {
		if config.Strict {
			return nil, err
		}
		failed := models.ParseErrors(err)
		logrus.Warnf("Skipped %d malformed package(s)", len(failed))
	}

	logrus.Debugf("Parsed %d packages", len(records))
	return records, nil
}
