package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipedscli/internal/analyzer"
)

func sampleStats() (analyzer.Descriptive, []analyzer.RegionStat) {
	desc := analyzer.Descriptive{
		Count: 2, Mean: 1500, Std: 707.106781, Min: 1000,
		P25: 1250, P50: 1500, P75: 1750, Max: 2000, Variance: 500000,
	}
	regions := []analyzer.RegionStat{
		{Region: "Northeast", Mean: 1500, Variance: 500000},
	}
	return desc, regions
}

func TestStatsTable(t *testing.T) {
	desc, regions := sampleStats()
	table := StatsTable(desc, regions)

	assert.Equal(t, []string{"Variable", "Value"}, table.Columns)
	require.Len(t, table.Rows, 11)

	variables := make([]string, len(table.Rows))
	for i, row := range table.Rows {
		variables[i] = row[0]
	}
	assert.Equal(t, []string{
		"count", "mean", "std", "min", "25%", "50%", "75%", "max", "variance",
		"Northeast Mean", "Northeast Variance",
	}, variables)

	assert.Equal(t, "1500.000", table.Rows[1][1])
	assert.Equal(t, "500000.000", table.Rows[10][1])
}

func TestStateAggregateTable(t *testing.T) {
	table := StateAggregateTable([]analyzer.StateAggregate{
		{State: "NY", GrantFederal: 200000, EnrollFTUG: 100, PerStudentGrant: 2000, Year: 2015},
	})

	assert.Equal(t, []string{"stabbr", "grant_federal", "enroll_ftug", "per_student_federal_grant", "year"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"NY", "200000.000", "100.000", "2000.000", "2015"}, table.Rows[0])
}

func TestSimulatedAggregateTable(t *testing.T) {
	table := SimulatedAggregateTable([]analyzer.SimulatedAggregate{
		{Year: 2015, State: "NY", PerStudentSimulated: 1825},
	})

	assert.Equal(t, []string{"year", "stabbr", "grant_per_student_simulated"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"2015", "NY", "1825.000"}, table.Rows[0])
}
