package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/gitextra/internal/application"
	"github.com/inovacc/gitextra/internal/cli"
	"github.com/inovacc/gitextra/internal/core"
	"github.com/inovacc/gitextra/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var quickStartCreateCmd = &cobra.Command{
	Use:   "create [url-or-name] [directory]",
	Short: "Create a new project by cloning a repo and running a customization script",
	Long: `Clone a repository, identified by URL or by a name from your catalog,
into a new directory and run its customization script if one exists.

With no url-or-name, an interactive picker over the catalog is shown.
With no directory, the repository name is used.

Examples:
  gitextra quick-start create git@github.com:alice/proj.git out
  gitextra quick-start create demo out --customizer setup.sh
  gitextra quick-start create demo`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := ui.NewConsole()

		var source, directory string
		if len(args) > 0 {
			source = args[0]
		}
		if len(args) > 1 {
			directory = args[1]
		}

		if source == "" {
			picked, err := pickCatalogEntry(log)
			if err != nil {
				return err
			}

			if picked == "" {
				// User aborted the picker.
				return nil
			}

			source = picked
		}

		customizer, _ := cmd.Flags().GetString("customizer")

		creator, err := core.NewCreator(log)
		if err != nil {
			return err
		}

		return creator.Create(cmd.Context(), core.CreateOptions{
			Source:     source,
			Directory:  directory,
			Customizer: customizer,
		})
	},
}

func init() {
	quickStartCmd.AddCommand(quickStartCreateCmd)
	quickStartCreateCmd.Flags().StringP("customizer", "c", "", "Name of the customization file relative to the new project directory")
}

// pickCatalogEntry shows the interactive catalog picker and returns
// the chosen name, or "" when the user aborts.
func pickCatalogEntry(log ui.Logger) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("a repository URL or catalog name is required")
	}

	path, err := application.CatalogPath()
	if err != nil {
		return "", err
	}

	cat, err := core.LoadCatalog(log, path)
	if err != nil {
		return "", err
	}

	if cat.Len() == 0 {
		return "", fmt.Errorf("your catalog has no entries to pick from; pass a repository URL instead")
	}

	p := tea.NewProgram(cli.NewCatalogPicker(cat))

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	return finalModel.(cli.CatalogPickerModel).Selection(), nil
}
