// Package cleaner filters the raw institution-year panel.
//
// Three independent filters compose into an ordered pipeline: restrict to
// bachelor's-degree-granting institutions, exclude a configurable set of
// states or territories, and keep only institutions observed in every year
// of the studied range (balanced panel). Each filter is skippable and each
// is a pure transform over the panel.
package cleaner
