// Package loader assembles the institution-year panel from raw IPEDS
// survey extracts.
//
// For every academic year in the requested range it reads the HD
// (institutional directory) and SFA (student financial aid) tables, keeps
// the required columns, inner-joins them on the institution identifier,
// recodes the bachelor's-degree and public-control flags to strict 0/1
// booleans, and concatenates the yearly merges into one long panel.
//
// A missing source file or a required column absent from a loaded table is
// fatal: the whole load aborts with an error naming the file or the column,
// and no partial panel is ever returned.
package loader
