package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mraditya/warungo/internal/config"
	"github.com/mraditya/warungo/internal/database"
	"github.com/mraditya/warungo/internal/server"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the storefront API server",
	Long: `Start the storefront API server which provides:
- Catalog endpoints (categories, products, search)
- Cart endpoints (add, update, remove, list)
- Checkout (atomic cart-to-order conversion)`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Warungo starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("✅ Database connected successfully")

	srv := server.NewServer(db)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
