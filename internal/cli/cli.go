//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pgedge-retailgen.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/config"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
	"github.com/pgEdge/pgedge-retailgen/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pgedge-retailgen",
		Short: "Deterministic retail sample dataset generator",
		Long: `pgedge-retailgen generates a referentially consistent retail dataset
(stores, products, customers, promotions, orders, order items, and daily
inventory snapshots) at a chosen scale tier, reproducibly from a seed,
and writes it to CSV files or a PostgreSQL database.

The same scale, days, seed, and start date always produce the same
tables, row for row, which makes the output suitable for repeatable
demos, integration tests, and query benchmarking fixtures.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./pgedge-retailgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string (postgres sink)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scalesCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "List available scale tiers",
	Long: `List the scale tiers and the row counts each one produces. The order
count is an exact target; order item and inventory snapshot counts also
depend on the days setting.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Available scale tiers:")
		cmd.Println()
		cmd.Println("  small   - 10 stores, 200 products, 2000 customers, 4000 orders")
		cmd.Println("  medium  - 50 stores, 1000 products, 25000 customers, 75000 orders")
		cmd.Println("  large   - 200 stores, 5000 products, 120000 customers, 500000 orders")
		cmd.Println()
		cmd.Println(fmt.Sprintf("Days of order history: %d-%d (default 14).",
			retail.MinDays, retail.MaxDays))
		cmd.Println("The same scale, days, seed, and start date reproduce the dataset exactly.")
	},
}
