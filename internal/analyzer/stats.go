package analyzer

import (
	"math"
	"sort"
)

// StatePoint is one state's value of the metric being summarized. Both the
// observed and the simulated aggregates reduce to this shape.
type StatePoint struct {
	State string
	Value float64
}

// Descriptive holds national descriptive statistics of a metric across
// states for one year.
type Descriptive struct {
	Count    float64
	Mean     float64
	Std      float64
	Min      float64
	P25      float64
	P50      float64
	P75      float64
	Max      float64
	Variance float64
}

// RegionStat is the mean and variance of a metric across the states of one
// census region.
type RegionStat struct {
	Region   string
	Mean     float64
	Variance float64
}

// Summarize computes national descriptive statistics over all points and
// mean/variance per census region. States outside the 50-state region
// lookup contribute to the national statistics but are excluded from the
// regional ones. Regions are returned in ascending name order.
func Summarize(points []StatePoint) (Descriptive, []RegionStat) {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	desc := describe(values)

	byRegion := make(map[string][]float64)
	for _, p := range points {
		region, ok := RegionOf(p.State)
		if !ok {
			continue
		}
		byRegion[region] = append(byRegion[region], p.Value)
	}

	regions := make([]RegionStat, 0, len(byRegion))
	for _, name := range RegionNames() {
		vals, ok := byRegion[name]
		if !ok {
			continue
		}
		regions = append(regions, RegionStat{
			Region:   name,
			Mean:     mean(vals),
			Variance: sampleVariance(vals),
		})
	}

	return desc, regions
}

// describe computes count, mean, sample standard deviation, min,
// quartiles and max, plus the sample variance.
func describe(values []float64) Descriptive {
	n := len(values)
	if n == 0 {
		return Descriptive{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	variance := sampleVariance(values)
	return Descriptive{
		Count:    float64(n),
		Mean:     mean(values),
		Std:      math.Sqrt(variance),
		Min:      sorted[0],
		P25:      percentile(sorted, 0.25),
		P50:      percentile(sorted, 0.50),
		P75:      percentile(sorted, 0.75),
		Max:      sorted[n-1],
		Variance: variance,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleVariance is the ddof=1 variance; a single observation has no
// dispersion and yields 0.
func sampleVariance(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(n-1)
}

// percentile computes the q-th percentile of sorted values with linear
// interpolation between closest ranks.
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	rank := q * float64(n-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}
