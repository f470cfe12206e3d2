package cmd

import (
	"github.com/inovacc/gitextra/internal/application"
	"github.com/inovacc/gitextra/internal/core"
	"github.com/inovacc/gitextra/internal/ui"
	"github.com/spf13/cobra"
)

var quickStartListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the named repositories in your catalog",
	Long:  `List the repositories declared in ~/.config/git_extra/repos.toml.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := ui.NewConsole()

		path, err := application.CatalogPath()
		if err != nil {
			return err
		}

		cat, err := core.LoadCatalog(log, path)
		if err != nil {
			return err
		}

		core.ListCatalog(log, cat)

		return nil
	},
}

func init() {
	quickStartCmd.AddCommand(quickStartListCmd)
}
