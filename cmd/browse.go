package cmd

import (
	"github.com/inovacc/gitextra/internal/core"
	"github.com/inovacc/gitextra/internal/ui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse to a remote's repository web page",
	Long: `Resolve a remote's fetch URL to its https://domain/user/project web
address and open it in the default browser.

Examples:
  gitextra browse                    # open the origin remote
  gitextra browse --remote upstream  # open another remote`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, _ := cmd.Flags().GetString("remote")

		return core.NewBrowser(ui.NewConsole()).Browse(cmd.Context(), remote)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().String("remote", "", `Override the remote name (default "origin")`)
}
