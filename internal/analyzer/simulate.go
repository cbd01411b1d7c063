package analyzer

import (
	"context"
	"log/slog"
	"sort"
)

// SimulatedAggregate is the per-state result of the hypothetical quadratic
// allocation rule for one year.
type SimulatedAggregate struct {
	Year                int
	State               string
	PerStudentSimulated float64
}

// Simulate applies the quadratic formula at the institution level for the
// target year, then re-aggregates by state and derives the per-student
// simulated grant.
//
// The formula must be applied per institution before summing: the
// quadratic term does not commute with summation, so a state's simulated
// grant is not a function of its total enrollment.
func (a *Analyzer) Simulate(ctx context.Context) []SimulatedAggregate {
	type sums struct {
		enroll    float64
		simulated float64
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
		if r.EnrollFTUG.Valid {
			e := r.EnrollFTUG.Float64
			s.enroll += e
			s.simulated += a.formula.Linear*e + a.formula.Quadratic*e*e
		}
	}

	out := make([]SimulatedAggregate, 0, len(byState))
	for state, s := range byState {
		out = append(out, SimulatedAggregate{
			Year:                a.year,
			State:               state,
			PerStudentSimulated: SafeDivide(s.simulated, s.enroll),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].State < out[j].State })

	a.logger.InfoContext(ctx, "simulated grant allocation",
		slog.Int("year", a.year),
		slog.Float64("linear", a.formula.Linear),
		slog.Float64("quadratic", a.formula.Quadratic),
		slog.Int("states", len(out)))

	return out
}
