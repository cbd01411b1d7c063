// Package analyzer derives state-level grant statistics from a cleaned
// panel.
//
// Given a target year it aggregates federal grant dollars and full-time
// undergraduate enrollment by state, computes per-student grants with a
// uniform divide-or-zero guard, summarizes any state-keyed metric
// nationally and by census region, and simulates an alternative quadratic
// grant-allocation rule at the institution level before re-aggregating.
//
// All operations are pure in-memory transforms over the panel; the panel
// itself is never mutated.
package analyzer
