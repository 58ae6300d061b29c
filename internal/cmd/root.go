package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridwear",
	Short: "Gridwear - F1 Streetwear Storefront",
	Long: `Gridwear serves the F1 streetwear storefront: the product catalog,
per-session shopping carts, page navigation, and the simulated auth flows.

Run it as a server to expose the REST API, or use the CLI commands to
inspect the catalog.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
