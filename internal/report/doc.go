// Package report renders the analyzer's outputs as tables, charts and
// maps.
//
// It consumes only the plain tabular structures the analytical core
// exposes: long-format statistics tables (CSV and LaTeX), line and bar
// charts, and tile-grid choropleth maps of state-level metrics. Nothing in
// the core depends on this package.
package report
