package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "warungo",
	Short: "Warungo - grocery storefront backend",
	Long: `Warungo is a small grocery storefront backend: a typed JSON API over a
relational store, covering the catalog, the shopping cart and the atomic
cart-to-order checkout.

Run the API server with "run", create the database tables with "migrate",
and load a sample catalog with "seed".`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
