package schema

import "time"

// Observation is one row of the normalized daily relation: a single
// (state, country, date) with its reported cumulative counts. A nil
// metric means the source never reported it for that day, which is not
// the same as reporting zero. After normalization Cases is always
// non-nil and greater than zero.
type Observation struct {
	State      string
	Country    string
	Date       time.Time
	Cases      *float64
	Deaths     *float64
	Population *float64
}

// TrendPoint is one day of the global aggregate. NewCases/NewDeaths are
// day-over-day differences; both are nil on the first date of the
// series since there is no prior value to diff against.
type TrendPoint struct {
	Date      time.Time
	Cases     float64
	Deaths    float64
	NewCases  *float64
	NewDeaths *float64
}

// CountryTotal is the final cumulative figure for one country.
// Per-million rates are nil when the population is zero.
type CountryTotal struct {
	Country          string
	Cases            float64
	Deaths           float64
	Population       float64
	CasesPerMillion  *float64
	DeathsPerMillion *float64
}

// CountryMapTotal carries the same totals keyed by the boundary
// dataset's naming convention instead of the source's.
type CountryMapTotal struct {
	Country string
	Cases   float64
	Deaths  float64
}

// Float64 - pointer of a float64 literal
func Float64(v float64) *float64 {
	return &v
}
