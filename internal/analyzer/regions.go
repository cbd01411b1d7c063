package analyzer

import "sort"

// Census Bureau four-region partition of the 50 states. This is fixed
// configuration data: built once at package init and never mutated.
var censusRegions = map[string][]string{
	"Northeast": {"ME", "NH", "VT", "MA", "RI", "CT", "NY", "NJ", "PA"},
	"Midwest":   {"OH", "IN", "IL", "MI", "WI", "MN", "IA", "MO", "ND", "SD", "NE", "KS"},
	"South":     {"DE", "MD", "VA", "WV", "NC", "SC", "GA", "FL", "KY", "TN", "MS", "AL", "OK", "TX", "AR", "LA"},
	"West":      {"WA", "OR", "CA", "NV", "ID", "MT", "WY", "CO", "NM", "AZ", "UT", "AK", "HI"},
}

var regionByState = func() map[string]string {
	m := make(map[string]string)
	for region, states := range censusRegions {
		for _, s := range states {
			m[s] = region
		}
	}
	return m
}()

// RegionOf maps a state abbreviation to its census region. States and
// territories outside the 50-state lookup map to no region.
func RegionOf(state string) (string, bool) {
	region, ok := regionByState[state]
	return region, ok
}

// RegionNames returns the four census region names in ascending order.
func RegionNames() []string {
	names := make([]string, 0, len(censusRegions))
	for name := range censusRegions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegionStates returns the states of one region, in the fixed partition
// order.
func RegionStates(region string) []string {
	return censusRegions[region]
}
