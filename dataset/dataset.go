package dataset

import (
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/pandemic-report/schema"
)

const (
	logPrefix = "dataset"

	// source anomaly: Greenland reports under Denmark's country code
	// but carries its own population and boundary
	greenland = "Greenland"
	denmark   = "Denmark"
)

var (
	ErrDuplicateKey = fmt.Errorf("duplicate (region, date) key")
)

type regionDate struct {
	state   string
	country string
	date    time.Time
}

// Build produces the normalized daily relation from the two melted
// metric series and the population lookup:
//
//   - full outer join of cases and deaths on (state, country, date);
//     a key reported by only one side keeps the other metric nil, never
//     zero, since "not reported" and "reported zero" must stay distinct
//   - left join of population on (state, country)
//   - Greenland rows are re-labelled from Denmark to their own country
//   - rows without a positive case count are dropped
//
// A duplicate key on either metric side is an error: picking an
// arbitrary match would make the report depend on input ordering.
func Build(cases, deaths []schema.Record, population schema.PopulationLookup) ([]schema.Observation, error) {
	caseIndex, err := index(cases)
	if nil != err {
		return nil, fmt.Errorf("cases: %w", err)
	}
	deathIndex, err := index(deaths)
	if nil != err {
		return nil, fmt.Errorf("deaths: %w", err)
	}

	keys := make(map[regionDate]struct{}, len(caseIndex))
	for k := range caseIndex {
		keys[k] = struct{}{}
	}
	for k := range deathIndex {
		keys[k] = struct{}{}
	}

	observations := make([]schema.Observation, 0, len(keys))
	dropped := 0
	for key := range keys {
		o := schema.Observation{
			State:   key.state,
			Country: key.country,
			Date:    key.date,
		}
		if v, ok := caseIndex[key]; ok {
			o.Cases = schema.Float64(v)
		}
		if v, ok := deathIndex[key]; ok {
			o.Deaths = schema.Float64(v)
		}
		if v, ok := population[schema.PopulationKey{State: key.state, Country: key.country}]; ok {
			o.Population = schema.Float64(v)
		}

		if o.State == greenland && o.Country == denmark {
			o.Country = greenland
		}

		// a nil case count is not greater than zero and is dropped too
		if o.Cases == nil || *o.Cases <= 0 {
			dropped++
			continue
		}
		observations = append(observations, o)
	}

	sort.Slice(observations, func(i, j int) bool {
		a, b := observations[i], observations[j]
		if a.Country != b.Country {
			return a.Country < b.Country
		}
		if a.State != b.State {
			return a.State < b.State
		}
		return a.Date.Before(b.Date)
	})

	log.WithFields(log.Fields{"prefix": logPrefix, "rows": len(observations), "dropped": dropped}).Debug("built daily observations")
	return observations, nil
}

func index(records []schema.Record) (map[regionDate]float64, error) {
	indexed := make(map[regionDate]float64, len(records))
	for _, r := range records {
		key := regionDate{state: r.State, country: r.Country, date: r.Date}
		if _, ok := indexed[key]; ok {
			return nil, fmt.Errorf("%w: %s/%s at %s", ErrDuplicateKey, r.State, r.Country, r.Date.Format("2006-01-02"))
		}
		indexed[key] = r.Value
	}
	return indexed, nil
}
