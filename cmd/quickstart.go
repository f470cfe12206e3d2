package cmd

import "github.com/spf13/cobra"

var quickStartCmd = &cobra.Command{
	Use:     "quick-start",
	Aliases: []string{"qs"},
	Short:   "Commands to quickly start projects",
}

func init() {
	rootCmd.AddCommand(quickStartCmd)
}
