// Package exporter persists the cleaned panel and the report tables.
//
// The panel file is the sole handoff between assembly and analysis: the
// assembler writes clean_data.csv (Latin-1, single header row, no index
// column) and the report commands re-read that same file instead of
// receiving the table in memory.
package exporter
