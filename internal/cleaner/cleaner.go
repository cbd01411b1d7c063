package cleaner

import (
	"context"
	"fmt"
	"log/slog"

	"ipedscli/internal/dataset"
	apperrors "ipedscli/internal/errors"
)

// Options selects which filters the cleaner applies. Each filter is
// independently skippable; they always run in the order degree filter,
// state exclusion, balancing.
type Options struct {
	// UndergraduateOnly keeps only institutions that offer a bachelor's
	// degree.
	UndergraduateOnly bool

	// ExcludeStates is a single state code (string) or a collection of
	// codes ([]string). Any other shape is a configuration error.
	ExcludeStates interface{}

	// BalancedPanel keeps only institutions observed in every year of
	// [StartYear, EndYear], after dropping rows with any missing value.
	BalancedPanel bool
	StartYear     int
	EndYear       int
}

// step is one predicate-transform stage of the filter pipeline.
type step struct {
	name  string
	apply func(dataset.Panel) dataset.Panel
}

// Cleaner filters a raw panel according to its options.
type Cleaner struct {
	steps  []step
	logger *slog.Logger
}

// New builds a cleaner. The state-exclusion argument is validated here,
// before any data is touched; an unsupported shape fails immediately.
func New(opts Options, logger *slog.Logger) (*Cleaner, error) {
	if logger == nil {
		logger = slog.Default()
	}

	exclude, err := normalizeExclusions(opts.ExcludeStates)
	if err != nil {
		return nil, err
	}

	var steps []step
	if opts.UndergraduateOnly {
		steps = append(steps, step{
			name: "undergraduate_institutions",
			apply: func(p dataset.Panel) dataset.Panel {
				return p.Filter(func(r dataset.Row) bool { return r.DegreeBach })
			},
		})
	}
	if len(exclude) > 0 {
		excluded := make(map[string]bool, len(exclude))
		for _, s := range exclude {
			excluded[s] = true
		}
		steps = append(steps, step{
			name: "state_exclusion",
			apply: func(p dataset.Panel) dataset.Panel {
				return p.Filter(func(r dataset.Row) bool { return !excluded[r.State] })
			},
		})
	}
	if opts.BalancedPanel {
		start, end := opts.StartYear, opts.EndYear
		steps = append(steps, step{
			name: "balanced_panel",
			apply: func(p dataset.Panel) dataset.Panel {
				return balance(p, start, end)
			},
		})
	}

	return &Cleaner{steps: steps, logger: logger}, nil
}

// Clean applies the configured filters in order. A filter removing every
// row is not an error; the result may be empty.
func (c *Cleaner) Clean(ctx context.Context, panel dataset.Panel) dataset.Panel {
	out := panel
	for _, s := range c.steps {
		before := len(out)
		out = s.apply(out)
		c.logger.InfoContext(ctx, "applied filter",
			slog.String("filter", s.name),
			slog.Int("rows_before", before),
			slog.Int("rows_after", len(out)))
	}
	return out
}

// balance drops every row with a missing value, then keeps only the
// institutions whose set of observed years is exactly [start, end]. An
// institution with partial coverage is evicted entirely, including the
// years where it was present.
func balance(panel dataset.Panel, start, end int) dataset.Panel {
	complete := panel.Filter(dataset.Row.Complete)

	yearsByID := make(map[int64]map[int]bool)
	for _, r := range complete {
		years, ok := yearsByID[r.UnitID]
		if !ok {
			years = make(map[int]bool)
			yearsByID[r.UnitID] = years
		}
		years[r.Year] = true
	}

	want := end - start + 1
	balanced := make(map[int64]bool, len(yearsByID))
	for id, years := range yearsByID {
		if len(years) != want {
			continue
		}
		ok := true
		for y := start; y <= end; y++ {
			if !years[y] {
				ok = false
				break
			}
		}
		if ok {
			balanced[id] = true
		}
	}

	return complete.Filter(func(r dataset.Row) bool { return balanced[r.UnitID] })
}

// normalizeExclusions accepts a single state code or a collection of codes
// and rejects every other shape.
func normalizeExclusions(v interface{}) ([]string, error) {
	switch states := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{states}, nil
	case []string:
		return states, nil
	case []interface{}:
		out := make([]string, 0, len(states))
		for _, s := range states {
			code, ok := s.(string)
			if !ok {
				return nil, shapeError(s)
			}
			out = append(out, code)
		}
		return out, nil
	default:
		return nil, shapeError(v)
	}
}

func shapeError(v interface{}) error {
	return apperrors.NewConfigError(
		fmt.Sprintf("excluding states must be a string or a slice of strings, got %T", v), nil)
}
