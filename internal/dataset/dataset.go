package dataset

import (
	"sort"
	"strconv"
)

// Float is a nullable numeric value. IPEDS source tables leave cells blank
// when an institution did not report, and blank is not the same as zero:
// sums skip missing values and the balanced-panel filter evicts rows that
// contain any.
type Float struct {
	Float64 float64
	Valid   bool
}

// NewFloat returns a valid Float holding v.
func NewFloat(v float64) Float {
	return Float{Float64: v, Valid: true}
}

// ParseFloat parses a CSV cell into a Float. An empty cell is a missing
// value, not an error.
func ParseFloat(cell string) (Float, error) {
	if cell == "" {
		return Float{}, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return Float{}, err
	}
	return NewFloat(v), nil
}

// String formats the value for CSV output; missing values serialize as an
// empty cell.
func (f Float) String() string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}

// Row is one institution-year observation of the panel. UnitID plus Year is
// a unique key within a panel.
type Row struct {
	UnitID        int64  // ID_IPEDS
	State         string // stabbr, 2-letter code
	HighestDegree Float  // highest_degree, categorical HLOFFER code
	DegreeBach    bool   // degree_bach, recoded from UGOFFER
	Public        bool   // public, recoded from CONTROL
	EnrollFTUG    Float  // enroll_ftug, full-time undergraduate enrollment
	GrantFederal  Float  // grant_federal, total federal grant dollars
	Year          int    // academic year labeled by its starting calendar year
}

// Complete reports whether the row has no missing value in any column.
func (r Row) Complete() bool {
	return r.State != "" && r.HighestDegree.Valid && r.EnrollFTUG.Valid && r.GrantFederal.Valid
}

// Panel is the long institution-year table assembled by the loader and
// filtered in place by the cleaner.
type Panel []Row

// Years returns the distinct years present in the panel, ascending.
func (p Panel) Years() []int {
	seen := make(map[int]bool)
	for _, r := range p {
		seen[r.Year] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Filter returns the rows for which keep is true, preserving order.
func (p Panel) Filter(keep func(Row) bool) Panel {
	out := make(Panel, 0, len(p))
	for _, r := range p {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Table is a plain column-ordered tabular structure, the contract between
// the analytical core and the presentation layer. Rows hold formatted cells
// in column order.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Append adds one row of cells to the table.
func (t *Table) Append(cells ...string) {
	t.Rows = append(t.Rows, cells)
}
