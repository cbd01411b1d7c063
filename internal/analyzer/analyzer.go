package analyzer

import (
	"context"
	"log/slog"
	"sort"

	"ipedscli/internal/dataset"
)

// Formula holds the two coefficients of the quadratic allocation rule:
// simulated grant = Linear*enrollment + Quadratic*enrollment².
type Formula struct {
	Linear    float64
	Quadratic float64
}

// Analyzer computes state-level grant statistics over a cleaned panel for
// one target year. The panel is read immutably; every method returns fresh
// derived aggregates.
type Analyzer struct {
	panel   dataset.Panel
	year    int
	formula Formula
	logger  *slog.Logger
}

// New creates an analyzer for the given panel, target year and simulation
// formula.
func New(panel dataset.Panel, year int, formula Formula, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{panel: panel, year: year, formula: formula, logger: logger}
}

// StateAggregate is the observed per-state aggregate for one year.
type StateAggregate struct {
	State           string
	GrantFederal    float64
	EnrollFTUG      float64
	PerStudentGrant float64
	Year            int
}

// PerStudentGrant filters the panel to the target year, sums federal grant
// dollars and enrollment by state, and derives the per-student grant.
// States are returned in ascending order.
func (a *Analyzer) PerStudentGrant(ctx context.Context) []StateAggregate {
	type sums struct {
		grant  float64
		enroll float64
	}
	byState := make(map[string]*sums)

	for _, r := range a.panel {
		if r.Year != a.year {
			continue
		}
		s, ok := byState[r.State]
		if !ok {
			s = &sums{}
			byState[r.State] = s
		}
		// Missing values are skipped, not treated as zero.
		if r.GrantFederal.Valid {
			s.grant += r.GrantFederal.Float64
		}
		if r.EnrollFTUG.Valid {
			s.enroll += r.EnrollFTUG.Float64
		}
	}

	out := make([]StateAggregate, 0, len(byState))
	for state, s := range byState {
		out = append(out, StateAggregate{
			State:           state,
			GrantFederal:    s.grant,
			EnrollFTUG:      s.enroll,
			PerStudentGrant: SafeDivide(s.grant, s.enroll),
			Year:            a.year,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].State < out[j].State })

	a.logger.InfoContext(ctx, "aggregated per-student grants",
		slog.Int("year", a.year),
		slog.Int("states", len(out)))

	return out
}

// SafeDivide returns numerator/denominator, or 0 when the denominator is
// not positive. A zero denominator is a defined case, never an error or a
// NaN: a state-year with no enrollment has a per-student grant of 0.
func SafeDivide(numerator, denominator float64) float64 {
	if denominator > 0 {
		return numerator / denominator
	}
	return 0
}
