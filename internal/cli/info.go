package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/ralt/pkginfo/internal/models"
	"github.com/ralt/pkginfo/internal/render"
	"github.com/ralt/pkginfo/internal/utils"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command
func NewInfoCmd() *cobra.Command {
	var config models.QueryConfig

	cmd := &cobra.Command{
		Use:   "info NAME",
		Short: "Show every field of one package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfig(&config); err != nil {
				return err
			}
			return runInfo(cmd.Context(), &config, args[0], cmd.OutOrStdout())
		},
	}

	addInputFlags(cmd, &config)

	return cmd
}

func runInfo(ctx context.Context, config *models.QueryConfig, name string, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	records, err := loadPackages(ctx, config)
	if err != nil {
		return err
	}

	rec, ok := utils.FindPackage(records, name)
	if !ok {
		return fmt.Errorf("package %q not found in %s", name, config.InputPath)
	}

	format, _ := render.ParseFormat(config.Format)
	return render.Details(w, format, *rec)
}
