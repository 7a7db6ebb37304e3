package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"missingfit/internal/catalog"
	"missingfit/internal/config"
	"missingfit/internal/export"
	"missingfit/internal/repos"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch the catalog and write it to an .xlsx file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		store := catalog.NewStore(repos.NewItemsClient(cfg.ItemsBaseURL, cfg.FetchTimeout))
		items, err := store.Load(cmd.Context())
		if err != nil {
			return err
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		if err := export.CatalogWorkbook(items, f); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d items to %s\n", len(items), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "catalog.xlsx", "output file")
}
