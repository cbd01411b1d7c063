package report

import (
	"fmt"

	"ipedscli/internal/analyzer"
	"ipedscli/internal/dataset"
)

// StatsTable builds the long-format two-column table used for both the
// tabular report and the LaTeX export: the national descriptive statistics
// first, then a "{Region} Mean" / "{Region} Variance" pair per census
// region.
func StatsTable(desc analyzer.Descriptive, regions []analyzer.RegionStat) dataset.Table {
	table := dataset.Table{Columns: []string{"Variable", "Value"}}

	table.Append("count", formatValue(desc.Count))
	table.Append("mean", formatValue(desc.Mean))
	table.Append("std", formatValue(desc.Std))
	table.Append("min", formatValue(desc.Min))
	table.Append("25%", formatValue(desc.P25))
	table.Append("50%", formatValue(desc.P50))
	table.Append("75%", formatValue(desc.P75))
	table.Append("max", formatValue(desc.Max))
	table.Append("variance", formatValue(desc.Variance))

	for _, r := range regions {
		table.Append(fmt.Sprintf("%s Mean", r.Region), formatValue(r.Mean))
		table.Append(fmt.Sprintf("%s Variance", r.Region), formatValue(r.Variance))
	}

	return table
}

// StateAggregateTable converts the observed state aggregates into the
// presentation contract's tabular shape.
func StateAggregateTable(aggs []analyzer.StateAggregate) dataset.Table {
	table := dataset.Table{Columns: []string{"stabbr", "grant_federal", "enroll_ftug", "per_student_federal_grant", "year"}}
	for _, a := range aggs {
		table.Append(
			a.State,
			formatValue(a.GrantFederal),
			formatValue(a.EnrollFTUG),
			formatValue(a.PerStudentGrant),
			fmt.Sprintf("%d", a.Year),
		)
	}
	return table
}

// SimulatedAggregateTable converts the simulated state aggregates into the
// presentation contract's tabular shape.
func SimulatedAggregateTable(sims []analyzer.SimulatedAggregate) dataset.Table {
	table := dataset.Table{Columns: []string{"year", "stabbr", "grant_per_student_simulated"}}
	for _, s := range sims {
		table.Append(
			fmt.Sprintf("%d", s.Year),
			s.State,
			formatValue(s.PerStudentSimulated),
		)
	}
	return table
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
