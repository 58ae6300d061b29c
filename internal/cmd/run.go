package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apexgrid/gridwear/internal/analytics"
	"github.com/apexgrid/gridwear/internal/auth"
	"github.com/apexgrid/gridwear/internal/catalog"
	"github.com/apexgrid/gridwear/internal/config"
	"github.com/apexgrid/gridwear/internal/server"
	"github.com/apexgrid/gridwear/internal/store"
	"github.com/apexgrid/gridwear/internal/view"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Gridwear storefront server",
	Long: `Start the Gridwear storefront server which provides:
- REST API for catalog browsing, carts and navigation
- Simulated login, signup and password-reset flows
- Fire-and-forget analytics webhook reporting`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🏁 Gridwear Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logrus.New()

	fmt.Println("🛍️  Loading catalog...")
	cat, err := loadCatalog(&cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	fmt.Printf("✅ Catalog loaded: %d products\n", cat.Len())

	verifier, err := auth.NewVerifier(&cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to build verifier: %w", err)
	}

	notifier := analytics.NewWebhook(cfg.Analytics.WebhookURL, cfg.Analytics.Timeout, log)
	authSvc := auth.NewService(verifier, notifier, cfg.Auth.SimulatedDelay, log)

	features := view.Features{
		AuthPages: cfg.Features.Auth,
		Search:    cfg.Features.Search,
	}
	sessions := store.NewSessions(features)

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(cat, sessions, authSvc, log)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func loadCatalog(cfg *config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.Path)
}
