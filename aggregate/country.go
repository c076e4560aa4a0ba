package aggregate

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/pandemic-report/schema"
)

const million = 1000000

type countryDay struct {
	country string
	date    time.Time
}

type countrySums struct {
	cases      float64
	deaths     float64
	population float64
}

// sumByCountryDay collapses admin-1 subdivisions into one daily figure
// per country. Rows without population are skipped when requirePopulation
// is set, since they cannot contribute to per-capita rates.
func sumByCountryDay(observations []schema.Observation, requirePopulation bool) map[countryDay]*countrySums {
	daily := make(map[countryDay]*countrySums)
	for _, o := range observations {
		if requirePopulation && o.Population == nil {
			continue
		}
		key := countryDay{country: o.Country, date: o.Date}
		s, ok := daily[key]
		if !ok {
			s = &countrySums{}
			daily[key] = s
		}
		if o.Cases != nil {
			s.cases += *o.Cases
		}
		if o.Deaths != nil {
			s.deaths += *o.Deaths
		}
		if o.Population != nil {
			s.population += *o.Population
		}
	}
	return daily
}

// maxByCountry reduces the per-day sums to one row per country, taking
// the maximum over all dates. The source series are cumulative and
// non-decreasing, so the maximum is the final figure and is robust to
// out-of-order or partial rows.
func maxByCountry(daily map[countryDay]*countrySums) map[string]*countrySums {
	totals := make(map[string]*countrySums)
	for key, s := range daily {
		t, ok := totals[key.country]
		if !ok {
			totals[key.country] = &countrySums{cases: s.cases, deaths: s.deaths, population: s.population}
			continue
		}
		if s.cases > t.cases {
			t.cases = s.cases
		}
		if s.deaths > t.deaths {
			t.deaths = s.deaths
		}
		if s.population > t.population {
			t.population = s.population
		}
	}
	return totals
}

// CountryTotals derives the per-country cumulative table with
// per-million rates. A zero population cannot be divided through; such
// a country keeps nil rates and is flagged in the log instead of
// carrying an infinity downstream.
func CountryTotals(observations []schema.Observation) []schema.CountryTotal {
	totals := maxByCountry(sumByCountryDay(observations, true))

	result := make([]schema.CountryTotal, 0, len(totals))
	for country, s := range totals {
		t := schema.CountryTotal{
			Country:    country,
			Cases:      s.cases,
			Deaths:     s.deaths,
			Population: s.population,
		}
		if s.population > 0 {
			t.CasesPerMillion = schema.Float64(s.cases * million / s.population)
			t.DeathsPerMillion = schema.Float64(s.deaths * million / s.population)
		} else {
			log.WithFields(log.Fields{"prefix": logPrefix, "country": country}).Warn("zero population, per-million rates undefined")
		}
		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Country < result[j].Country })
	return result
}
