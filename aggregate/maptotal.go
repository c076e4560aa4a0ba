package aggregate

import (
	"sort"

	"github.com/bitmark-inc/pandemic-report/consts"
	"github.com/bitmark-inc/pandemic-report/schema"
)

// CountryMapTotals derives the same two-level country totals without
// the per-capita columns and renames countries to the boundary
// dataset's convention. The renaming is a pure lookup applied at this
// single stage; names without an entry pass through unchanged.
func CountryMapTotals(observations []schema.Observation) []schema.CountryMapTotal {
	totals := maxByCountry(sumByCountryDay(observations, false))

	result := make([]schema.CountryMapTotal, 0, len(totals))
	for country, s := range totals {
		result = append(result, schema.CountryMapTotal{
			Country: consts.MapCountry(country),
			Cases:   s.cases,
			Deaths:  s.deaths,
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Country < result[j].Country })
	return result
}
