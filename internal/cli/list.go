package cli

import (
	"bytes"
	"context"
	"io"

	"github.com/ralt/pkginfo/internal/models"
	"github.com/ralt/pkginfo/internal/render"
	"github.com/ralt/pkginfo/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var config models.QueryConfig
	var output string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List packages from a query capture",
		Long: `Parses a captured package query and lists every package it
describes, in capture order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate configuration
			if err := validateConfig(&config); err != nil {
				return err
			}

			logrus.Debugf("Configuration: %+v", config)

			if output != "" {
				var buf bytes.Buffer
				if err := runList(cmd.Context(), &config, &buf); err != nil {
					return err
				}
				return utils.WriteFile(output, buf.Bytes(), 0644)
			}
			return runList(cmd.Context(), &config, cmd.OutOrStdout())
		},
	}

	addInputFlags(cmd, &config)
	cmd.Flags().BoolVarP(&config.Explicit, "explicit", "e", false, "List only explicitly installed packages")
	cmd.Flags().BoolVarP(&config.Deps, "deps", "d", false, "List only packages installed as dependencies")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the listing to a file instead of stdout")

	return cmd
}

func runList(ctx context.Context, config *models.QueryConfig, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	records, err := loadPackages(ctx, config)
	if err != nil {
		return err
	}

	for _, dup := range utils.DetectDuplicates(records) {
		logrus.Warnf("Package listed more than once: %s", utils.PackageIdentity(dup))
	}

	records = filterPackages(records, config)

	format, _ := render.ParseFormat(config.Format)
	return render.Write(w, format, records)
}

// filterPackages applies the install reason filters
func filterPackages(records []models.PackageRecord, config *models.QueryConfig) []models.PackageRecord {
	if !config.Explicit && !config.Deps {
		return records
	}

	filtered := make([]models.PackageRecord, 0, len(records))
	for _, rec := range records {
		if rec.ExplicitlyInstalled() == config.Explicit {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
