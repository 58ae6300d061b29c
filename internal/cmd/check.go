package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apexgrid/gridwear/internal/config"
)

var (
	showProducts bool
	categoryID   string
)

var checkCmd = &cobra.Command{
	Use:   "check-catalog",
	Short: "Inspect the loaded product catalog",
	Long: `Print the categories and products the storefront would serve with the
current configuration. Useful for validating a catalog file before
pointing the server at it.`,
	RunE: checkCatalog,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&showProducts, "show-products", false, "List every product under each category")
	checkCmd.Flags().StringVar(&categoryID, "category", "", "Only show a single category")
}

func checkCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cat, err := loadCatalog(&cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	source := cfg.Catalog.Path
	if source == "" {
		source = "built-in seed data"
	}
	fmt.Printf("🛍️  Catalog from %s: %d products\n", source, cat.Len())
	fmt.Println(strings.Repeat("─", 60))

	for _, category := range cat.Categories() {
		if categoryID != "" && category.ID != categoryID {
			continue
		}

		products := cat.ProductsByCategory(category.ID)
		status := "browsable"
		if !category.Clickable {
			status = "coming soon"
		}
		fmt.Printf("\n%s %s (%s): %d product(s), %s\n",
			category.Image, category.Name, category.ID, len(products), status)

		if !showProducts {
			continue
		}
		for _, p := range products {
			fmt.Printf("   #%d %-28s $%s\n", p.ID, p.Name, p.Price.StringFixed(2))
		}
	}

	// Products whose category has no tile never render; call them out.
	orphans := 0
	for _, p := range cat.Products() {
		if _, err := cat.CategoryByID(p.Category); err != nil {
			orphans++
			fmt.Printf("\n⚠️  Product #%d %q references unknown category %q\n", p.ID, p.Name, p.Category)
		}
	}
	if orphans == 0 {
		fmt.Println("\n✅ Every product belongs to a known category")
	}

	return nil
}
