// Command grant-report analyzes per-student federal grants for the
// configured target year. It re-reads the exported clean_data.csv, writes
// the state aggregates and descriptive/regional statistics as CSV and
// LaTeX tables, renders a state comparison bar chart, runs the quadratic
// allocation simulation, and draws tile-grid choropleth maps for both the
// observed and the simulated metric.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ipedscli/internal/analyzer"
	"ipedscli/internal/config"
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
	slog.Info("Loaded cleaned panel", "rows", len(panel))

	ctx := context.Background()
	year := cfg.Analysis.Year
	yearLabel := config.AcademicYearLabel(year)

	a, b := cfg.Analysis.Formula()
	anl := analyzer.New(panel, year, analyzer.Formula{Linear: a, Quadratic: b}, logger)
	writer := exporter.New(paths, logger)

	// Observed per-student grants by state.
	aggs := anl.PerStudentGrant(ctx)
	if err := writer.WriteTable(ctx, "per_student_federal_grant.csv", report.StateAggregateTable(aggs)); err != nil {
		slog.Error("Failed to write state aggregates", "error", err)
		os.Exit(1)
	}

	// State comparison bar chart.
	if err := writeComparisonChart(paths, cfg.Analysis.CompareStates, aggs, yearLabel); err != nil {
		slog.Error("Failed to render comparison chart", "error", err)
		os.Exit(1)
	}

	// Descriptive and regional statistics of the observed metric.
	points := make([]analyzer.StatePoint, len(aggs))
	for i, agg := range aggs {
		points[i] = analyzer.StatePoint{State: agg.State, Value: agg.PerStudentGrant}
	}
	if err := writeStats(ctx, writer, paths, points,
		"descriptive_statistics",
		"Descriptive Statistics and Regional Means and Variances",
		fmt.Sprintf("Per-student Federal Grant %s", yearLabel)); err != nil {
		slog.Error("Failed to write statistics tables", "error", err)
		os.Exit(1)
	}

	// Quadratic allocation simulation, re-aggregated by state.
	sims := anl.Simulate(ctx)
	if err := writer.WriteTable(ctx, "grant_per_student_simulated.csv", report.SimulatedAggregateTable(sims)); err != nil {
		slog.Error("Failed to write simulated aggregates", "error", err)
		os.Exit(1)
	}

	simPoints := make([]analyzer.StatePoint, len(sims))
	for i, sim := range sims {
		simPoints[i] = analyzer.StatePoint{State: sim.State, Value: sim.PerStudentSimulated}
	}
	if err := writeStats(ctx, writer, paths, simPoints,
		"descriptive_statistics_simulated",
		"Descriptive Statistics and Regional Means and Variances (Simulated)",
		fmt.Sprintf("Grant per-student Simulated %s", yearLabel)); err != nil {
		slog.Error("Failed to write simulated statistics tables", "error", err)
		os.Exit(1)
	}

	// Choropleth maps for both metrics.
	actualValues := make(map[string]float64, len(aggs))
	for _, agg := range aggs {
		actualValues[agg.State] = agg.PerStudentGrant
	}
	if err := report.SaveTileMap(
		paths.FigurePath("federal_grant_per_student_by_state.png"),
		fmt.Sprintf("Federal Grant per Student by State (%s)", yearLabel),
		actualValues); err != nil {
		slog.Error("Failed to render grant map", "error", err)
		os.Exit(1)
	}

	simValues := make(map[string]float64, len(sims))
	for _, sim := range sims {
		simValues[sim.State] = sim.PerStudentSimulated
	}
	if err := report.SaveTileMap(
		paths.FigurePath("grant_per_student_simulated_by_state.png"),
		fmt.Sprintf("Grant per Student Simulated by State (%s)", yearLabel),
		simValues); err != nil {
		slog.Error("Failed to render simulation map", "error", err)
		os.Exit(1)
	}

	slog.Info("Grant report generated",
		"year", year,
		"states", len(aggs),
		"reports_dir", paths.ReportsDir,
		"figures_dir", paths.FiguresDir)
}

// writeComparisonChart renders the per-student grant bar chart for the
// selected pair of states.
func writeComparisonChart(paths *config.Paths, states []string, aggs []analyzer.StateAggregate, yearLabel string) error {
	byState := make(map[string]float64, len(aggs))
	for _, agg := range aggs {
		byState[agg.State] = agg.PerStudentGrant
	}

	labels := make([]string, 0, len(states))
	values := make([]float64, 0, len(states))
	for _, s := range states {
		v, ok := byState[s]
		if !ok {
			slog.Warn("Comparison state absent from aggregates", "state", s)
			continue
		}
		labels = append(labels, s)
		values = append(values, v)
	}
	if len(values) == 0 {
		slog.Warn("No comparison states present; skipping bar chart")
		return nil
	}

	name := fmt.Sprintf("per_student_federal_grant_%s.png", chartSlug(labels))
	return report.SaveBarChart(
		paths.FigurePath(name),
		fmt.Sprintf("Per Student Federal Grant: %s (%s)", chartTitle(labels), yearLabel),
		"State",
		"Per Student Federal Grant",
		labels, values)
}

// writeStats writes the long-format statistics table as both CSV and
// LaTeX.
func writeStats(ctx context.Context, writer *exporter.Writer, paths *config.Paths, points []analyzer.StatePoint, name, caption, title string) error {
	desc, regions := analyzer.Summarize(points)
	table := report.StatsTable(desc, regions)

	if err := writer.WriteTable(ctx, name+".csv", table); err != nil {
		return err
	}
	return report.WriteLaTeX(paths.ReportPath(name+".tex"), table, caption, "tab:desc_region_stats")
}

func chartSlug(labels []string) string {
	slug := ""
	for i, l := range labels {
		if i > 0 {
			slug += "_vs_"
		}
		slug += l
	}
	return slug
}

func chartTitle(labels []string) string {
	title := ""
	for i, l := range labels {
		if i > 0 {
			title += " vs "
		}
		title += l
	}
	return title
}
