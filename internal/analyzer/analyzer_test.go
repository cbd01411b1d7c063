package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipedscli/internal/dataset"
)

func institution(id int64, state string, year int, enroll, grant float64) dataset.Row {
	return dataset.Row{
		UnitID:        id,
		State:         state,
		HighestDegree: dataset.NewFloat(9),
		DegreeBach:    true,
		EnrollFTUG:    dataset.NewFloat(enroll),
		GrantFederal:  dataset.NewFloat(grant),
		Year:          year,
	}
}

func TestAnalyzer_PerStudentGrant(t *testing.T) {
	panel := dataset.Panel{
		institution(1, "NY", 2015, 100, 200000),
		institution(2, "VT", 2015, 30, 30000),
		institution(3, "NY", 2014, 999, 999999), // other year, ignored
	}

	a := New(panel, 2015, Formula{}, nil)
	got := a.PerStudentGrant(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, StateAggregate{
		State: "NY", GrantFederal: 200000, EnrollFTUG: 100,
		PerStudentGrant: 2000.00, Year: 2015,
	}, got[0])
	assert.Equal(t, StateAggregate{
		State: "VT", GrantFederal: 30000, EnrollFTUG: 30,
		PerStudentGrant: 1000.00, Year: 2015,
	}, got[1])
}

func TestAnalyzer_PerStudentGrant_SumsWithinState(t *testing.T) {
	panel := dataset.Panel{
		institution(1, "NY", 2015, 100, 200000),
		institution(2, "NY", 2015, 300, 100000),
	}

	a := New(panel, 2015, Formula{}, nil)
	got := a.PerStudentGrant(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, 300000.0, got[0].GrantFederal)
	assert.Equal(t, 400.0, got[0].EnrollFTUG)
	assert.Equal(t, 750.0, got[0].PerStudentGrant)
}

func TestAnalyzer_PerStudentGrant_ZeroEnrollment(t *testing.T) {
	panel := dataset.Panel{institution(1, "NY", 2015, 0, 50000)}

	a := New(panel, 2015, Formula{}, nil)
	got := a.PerStudentGrant(context.Background())

	require.Len(t, got, 1)
	// Defined as 0, never an error or NaN.
	assert.Equal(t, 0.0, got[0].PerStudentGrant)
}

func TestAnalyzer_PerStudentGrant_SkipsMissingValues(t *testing.T) {
	noGrant := institution(2, "NY", 2015, 50, 0)
	noGrant.GrantFederal = dataset.Float{}

	panel := dataset.Panel{
		institution(1, "NY", 2015, 100, 200000),
		noGrant,
	}

	a := New(panel, 2015, Formula{}, nil)
	got := a.PerStudentGrant(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, 200000.0, got[0].GrantFederal)
	assert.Equal(t, 150.0, got[0].EnrollFTUG)
}

// Per-state reconciliation: summed grant equals the per-student grant
// scaled back up by enrollment.
func TestAnalyzer_PerStudentGrant_Reconciles(t *testing.T) {
	panel := dataset.Panel{
		institution(1, "NY", 2015, 120, 250000),
		institution(2, "NY", 2015, 80, 90000),
		institution(3, "VT", 2015, 30, 30000),
	}

	a := New(panel, 2015, Formula{}, nil)
	for _, agg := range a.PerStudentGrant(context.Background()) {
		assert.InDelta(t, agg.GrantFederal, agg.PerStudentGrant*agg.EnrollFTUG, 1e-9)
	}
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 2000.0, SafeDivide(200000, 100))
	assert.Equal(t, 0.0, SafeDivide(50000, 0))
	assert.Equal(t, 0.0, SafeDivide(0, 0))
	assert.Equal(t, 0.0, SafeDivide(100, -5))
}
