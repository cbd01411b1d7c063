package analyzer

import (
	"sort"

	"ipedscli/internal/config"
	"ipedscli/internal/dataset"
)

// TrendPoint is one year's total enrollment at public two-year colleges.
type TrendPoint struct {
	Year         int
	AcademicYear string
	EnrollFTUG   float64
}

// EnrollmentTrend sums full-time undergraduate enrollment by year over
// public institutions whose highest degree offered is at most an
// associate's-level code (HLOFFER 1 through 4), the panel's definition of a
// public two-year college.
func EnrollmentTrend(panel dataset.Panel) []TrendPoint {
	byYear := make(map[int]float64)
	for _, r := range panel {
		if !r.Public || !r.HighestDegree.Valid {
			continue
		}
		code := r.HighestDegree.Float64
		if code < 1 || code > 4 {
			continue
		}
		if r.EnrollFTUG.Valid {
			byYear[r.Year] += r.EnrollFTUG.Float64
		}
	}

	out := make([]TrendPoint, 0, len(byYear))
	for year, enroll := range byYear {
		out = append(out, TrendPoint{
			Year:         year,
			AcademicYear: config.AcademicYearLabel(year),
			EnrollFTUG:   enroll,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
