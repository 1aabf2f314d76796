package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pkginfo",
		Short: "Inspect installed packages from a captured package query",
		Long: `Pkginfo parses the output of a package query tool and renders
the installed packages it describes.

Capture the query first, for example:
  pacman -Qi > packages.txt
  pacman -Qi | zstd > packages.txt.zst

Supported query tools:
  - pacman (pacman --query --info)`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewInfoCmd())

	return rootCmd
}
