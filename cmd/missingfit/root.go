package main

import (
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd runs the storefront when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "missingfit",
	Short: "Storefront for The Missing Fit outfit rentals",
	Long: `missingfit serves the rental storefront: a browsable catalog of
lehengas, sarees, gowns and more, fetched from the items API, with WhatsApp
and phone enquiry links.

Available commands:
  serve    - run the web server (default)
  catalog  - print the current catalog window
  export   - write the catalog to an .xlsx file`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (overrides CONFIG_FILE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(exportCmd)
}
