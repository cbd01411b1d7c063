// Command enrollment-trend charts total full-time undergraduate
// enrollment at public two-year colleges by academic year, reading the
// panel exported by the assembler.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strconv"

	"ipedscli/internal/analyzer"
	"ipedscli/internal/config"
	"ipedscli/internal/dataset"
	"ipedscli/internal/exporter"
	"ipedscli/internal/report"
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
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create output directories", "error", err)
		os.Exit(1)
	}

	panel, err := exporter.ReadPanel(paths.CleanDataCSV)
	if err != nil {
		slog.Error("Failed to read cleaned panel",
			"error", err,
			"hint", "Run assembler first to generate clean_data.csv")
		os.Exit(1)
	}

	trend := analyzer.EnrollmentTrend(panel)
	if len(trend) == 0 {
		slog.Error("No public two-year college enrollment in panel")
		os.Exit(1)
	}
	slog.Info("Computed enrollment trend", "years", len(trend))

	labels := make([]string, len(trend))
	values := make([]float64, len(trend))
	table := dataset.Table{Columns: []string{"year", "academic_year", "enroll_ftug"}}
	for i, p := range trend {
		labels[i] = p.AcademicYear
		values[i] = p.EnrollFTUG
		table.Append(
			strconv.Itoa(p.Year),
			p.AcademicYear,
			dataset.NewFloat(p.EnrollFTUG).String(),
		)
	}

	ctx := context.Background()
	writer := exporter.New(paths, logger)
	if err := writer.WriteTable(ctx, "enroll_by_year.csv", table); err != nil {
		slog.Error("Failed to write enrollment table", "error", err)
		os.Exit(1)
	}

	figPath := paths.FigurePath("public_two_year_colleges_enroll_by_year.png")
	err = report.SaveLineChart(figPath,
		"Total number of students enrolled at all public, two-year colleges by Academic Year",
		"Academic Year",
		"Total students enrolled",
		labels, values)
	if err != nil {
		slog.Error("Failed to render enrollment chart", "error", err)
		os.Exit(1)
	}

	slog.Info("Enrollment trend generated", "figure", figPath)
}
