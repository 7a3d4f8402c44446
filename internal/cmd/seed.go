package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mraditya/warungo/internal/catalog"
	"github.com/mraditya/warungo/internal/config"
	"github.com/mraditya/warungo/internal/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a sample grocery catalog",
	Long:  `Insert a small set of grocery categories and products for local development.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

type seedProduct struct {
	name        string
	description string
	price       string
	stock       int
}

var seedCatalog = []struct {
	category    string
	description string
	products    []seedProduct
}{
	{
		category:    "Beras",
		description: "Rice in various grades and pack sizes",
		products: []seedProduct{
			{"Beras Premium 5kg", "Premium long-grain rice, 5kg bag", "74.50", 40},
			{"Beras Medium 10kg", "Everyday medium-grain rice, 10kg bag", "118.00", 25},
		},
	},
	{
		category:    "Minyak Goreng",
		description: "Cooking oils",
		products: []seedProduct{
			{"Minyak Goreng 2L", "Palm cooking oil, 2 liter pouch", "38.90", 60},
			{"Minyak Kelapa 1L", "Coconut oil, 1 liter bottle", "52.00", 18},
		},
	},
	{
		category:    "Bumbu Dapur",
		description: "Kitchen spices and seasonings",
		products: []seedProduct{
			{"Garam Halus 500g", "Fine iodized salt", "4.50", 120},
			{"Kecap Manis 600ml", "Sweet soy sauce", "21.75", 45},
			{"Sambal Botol 340ml", "Bottled chili sauce", "16.20", 3},
		},
	},
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	store := catalog.NewStore(db)
	ctx := context.Background()

	seeded := 0
	for _, entry := range seedCatalog {
		desc := entry.description
		category, err := store.CreateCategory(ctx, entry.category, &desc)
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", entry.category, err)
		}

		for _, p := range entry.products {
			price, err := decimal.NewFromString(p.price)
			if err != nil {
				return fmt.Errorf("bad seed price %q: %w", p.price, err)
			}
			productDesc := p.description
			_, err = store.CreateProduct(ctx, catalog.CreateProductInput{
				Name:          p.name,
				Description:   &productDesc,
				Price:         price,
				StockQuantity: p.stock,
				CategoryID:    category.ID,
			})
			if err != nil {
				return fmt.Errorf("failed to seed product %q: %w", p.name, err)
			}
			seeded++
		}
	}

	fmt.Printf("✅ Seeded %d categories and %d products\n", len(seedCatalog), seeded)
	return nil
}
