package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"missingfit/internal/catalog"
	"missingfit/internal/config"
	"missingfit/internal/repos"
	"missingfit/internal/validate"
)

var (
	catalogCategory string
	catalogShow     int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Fetch the catalog and print the collection window",
	Long: `Fetches the items API once and prints what the collection page would
show for --category with --show items revealed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cat, ok := validate.Category(catalogCategory)
		if !ok {
			return fmt.Errorf("invalid category %q", catalogCategory)
		}
		store := catalog.NewStore(repos.NewItemsClient(cfg.ItemsBaseURL, cfg.FetchTimeout))
		if _, err := store.Load(cmd.Context()); err != nil {
			return err
		}
		b := catalog.NewBrowse(catalog.CollectionPager).WithCategory(cat).WithReveal(catalogShow)
		return printView(cmd.OutOrStdout(), b.View(store.Items()))
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "all", "category slug, e.g. lehenga or gown")
	catalogCmd.Flags().IntVar(&catalogShow, "show", 0, "items to reveal (default one page)")
}

func printView(w io.Writer, v catalog.View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tSTATUS\tRENT\tSIZES")
	for _, it := range v.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			it.ID, it.Name, it.CategoryLabel(), it.Status.Label(),
			it.PriceWithoutAccessories, strings.Join(it.Sizes, ","))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d of %d shown", len(v.Items), v.Total)
	if v.NextReveal > 0 {
		fmt.Fprintf(w, " (--show %d for more)", v.NextReveal)
	}
	fmt.Fprintln(w)
	return nil
}
