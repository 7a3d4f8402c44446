package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mraditya/warungo/internal/config"
	"github.com/mraditya/warungo/internal/database"
)

var dropTables bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the storefront database tables",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&dropTables, "drop", false, "drop all storefront tables instead of creating them")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if dropTables {
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
		fmt.Println("✅ Storefront tables dropped")
		return nil
	}

	if err := db.SetupSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	fmt.Println("✅ Storefront tables created")
	return nil
}
