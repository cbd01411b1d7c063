// Command assembler builds the institution-year panel: it loads the raw
// IPEDS directory and financial-aid tables for the configured year range,
// applies the cleaning filters, and exports clean_data.csv for the report
// commands.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"ipedscli/internal/cleaner"
	"ipedscli/internal/config"
	"ipedscli/internal/exporter"
	"ipedscli/internal/loader"
)

func main() {
	configFile := flag.String("config", "", "optional pipeline YAML config (defaults to env + built-in defaults)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logging.NewLogger()
	slog.SetDefault(logger)

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	slog.Info("Assembling panel",
		"start_year", cfg.Panel.StartYear,
		"end_year", cfg.Panel.EndYear,
		"raw_data_dir", paths.RawDataDir)

	panel, err := loader.New(paths, logger).Load(ctx, cfg.Panel.StartYear, cfg.Panel.EndYear)
	if err != nil {
		slog.Error("Failed to assemble panel", "error", err)
		os.Exit(1)
	}

	c, err := cleaner.New(cleaner.Options{
		UndergraduateOnly: cfg.Panel.UndergraduateOnly,
		ExcludeStates:     cfg.Panel.ExcludeStates,
		BalancedPanel:     cfg.Panel.BalancedPanel,
		StartYear:         cfg.Panel.StartYear,
		EndYear:           cfg.Panel.EndYear,
	}, logger)
	if err != nil {
		slog.Error("Invalid cleaning options", "error", err)
		os.Exit(1)
	}

	clean := c.Clean(ctx, panel)
	slog.Info("Panel cleaned", "raw_rows", len(panel), "clean_rows", len(clean))

	if err := exporter.New(paths, logger).WritePanel(ctx, clean); err != nil {
		slog.Error("Failed to export cleaned panel", "error", err)
		os.Exit(1)
	}

	slog.Info("Cleaned data exported", "path", paths.CleanDataCSV, "rows", len(clean))
}
