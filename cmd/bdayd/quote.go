package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/bdayd/internal/catalog"
	"github.com/alfredjeanlab/bdayd/internal/ui"
)

var quoteCatalogPath string

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a random quote from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()
		if quoteCatalogPath != "" {
			var err error
			cat, err = catalog.Load(quoteCatalogPath)
			if err != nil {
				return err
			}
		}

		q := cat.RandomQuote()
		fmt.Printf("%s\n  %s\n", ui.RenderValue("“"+q.Text+"”"), ui.RenderMuted("— "+q.Author))
		return nil
	},
}

func init() {
	quoteCmd.Flags().StringVar(&quoteCatalogPath, "catalog", "", "TOML catalog file (defaults to the built-in catalog)")
}
