package cmd

import (
	"os"

	"github.com/inovacc/gitextra/internal/application"
	"github.com/inovacc/gitextra/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     application.AppName,
	Version: application.Version,
	Short:   "Extra git helpers",
	Long: `Gitextra adds two helpers around the git command line: browsing to a
remote's repository web page, and quickly starting projects by cloning
a known repository and running its customization script.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.NewConsole().Errorf("%v", err)
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}
