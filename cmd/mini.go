package cmd

import (
	"github.com/anisan-cli/animedex/mini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)
	addCatalogFlags(miniCmd, true)
}

// miniCmd browses the catalog with line prompts instead of a full screen.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Browse the catalog with plain terminal prompts",
	Long:  `Browse the catalog page by page using line-oriented prompts. Useful in terminals without alternate screen support.`,
	Run: func(cmd *cobra.Command, args []string) {
		params, record, err := startingPoint(cmd)
		handleErr(err)

		handleErr(mini.Run(&mini.Options{Params: params, Record: record}))
	},
}
