//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/config"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
	"github.com/pgEdge/pgedge-retailgen/internal/sink"
)

var (
	genScale     string
	genDays      int
	genSeed      uint64
	genStartDate string
	genSink      string
	genOutputDir string
	genOverwrite bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the retail dataset and write it to the configured sink",
	Long: `Generate all seven retail tables at the chosen scale tier and write
them out. Generation is all-or-nothing: either every table passes the
referential integrity check and is written, or the run fails and no
output is produced.

Examples:
  pgedge-retailgen generate --scale small --days 14 --seed 42
  pgedge-retailgen generate --scale medium --sink postgres --connection "postgres://..." --overwrite
  pgedge-retailgen generate --scale small --start-date 2026-08-01 --output-dir ./data`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genScale, "scale", "",
		"scale tier (small, medium, large)")
	generateCmd.Flags().IntVar(&genDays, "days", 0,
		"days of order history (1-365)")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0,
		"reproducibility seed")
	generateCmd.Flags().StringVar(&genStartDate, "start-date", "",
		"last day of the order window as YYYY-MM-DD (default: today UTC)")
	generateCmd.Flags().StringVar(&genSink, "sink", "",
		"output sink (csv, postgres)")
	generateCmd.Flags().StringVar(&genOutputDir, "output-dir", "",
		"output directory for the csv sink")
	generateCmd.Flags().BoolVar(&genOverwrite, "overwrite", false,
		"replace existing output instead of refusing (csv) or appending (postgres)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if genScale != "" {
		cfg.Generate.Scale = genScale
	}
	if cmd.Flags().Changed("days") {
		cfg.Generate.Days = genDays
	}
	if cmd.Flags().Changed("seed") {
		cfg.Generate.Seed = genSeed
	}
	if genStartDate != "" {
		cfg.Generate.StartDate = genStartDate
	}
	if genSink != "" {
		cfg.Generate.Sink = genSink
	}
	if genOutputDir != "" {
		cfg.Generate.OutputDir = genOutputDir
	}
	if genOverwrite {
		cfg.Generate.Overwrite = true
	}

	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	profile, err := retail.ResolveProfile(
		cfg.Generate.Scale, cfg.Generate.Days, cfg.Generate.Seed, cfg.Anchor())
	if err != nil {
		return err
	}

	// Ctrl+C cancels between stages; no partial dataset is written.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dataset, err := retail.Generate(ctx, profile)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	counts := dataset.RowCounts()
	for _, name := range retail.TableNames {
		logging.Info().Str("table", name).Int("rows", counts[name]).Msg("Table generated")
	}

	writer, err := newWriter(cfg)
	if err != nil {
		return err
	}
	if err := writer.Write(ctx, dataset); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	logging.Info().
		Str("scale", profile.Scale).
		Str("sink", cfg.Generate.Sink).
		Msg("Dataset generation complete")
	return nil
}

func newWriter(cfg *config.Config) (sink.Writer, error) {
	switch cfg.Generate.Sink {
	case config.SinkCSV:
		return sink.NewCSVWriter(cfg.Generate.OutputDir, cfg.Generate.Overwrite), nil
	case config.SinkPostgres:
		return sink.NewPostgresWriter(cfg.Connection, cfg.Generate.Overwrite), nil
	default:
		return nil, fmt.Errorf("unknown sink %q", cfg.Generate.Sink)
	}
}
