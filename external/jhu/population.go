package jhu

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/pandemic-report/schema"
)

// FetchPopulation - download the region lookup table and reduce it to a
// (state, country) → population mapping. The lookup carries extra
// identifier and coordinate columns which are discarded. A region with
// an empty population cell is skipped; a non-numeric one is an error
// rather than a silent null, since coercing it would shrink the
// per-capita tables without a trace.
func (c *Client) FetchPopulation() (schema.PopulationLookup, error) {
	data, err := c.get(c.populationURL)
	if nil != err {
		return nil, err
	}
	return parsePopulation(data)
}

func parsePopulation(data []byte) (schema.PopulationLookup, error) {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if nil != err {
		return nil, fmt.Errorf("%w: %s", ErrSchemaMismatch, err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptyDataset
	}

	stateIdx, countryIdx, populationIdx, admin2Idx := -1, -1, -1, -1
	for i, name := range rows[0] {
		switch name {
		case "Province_State":
			stateIdx = i
		case "Country_Region":
			countryIdx = i
		case "Population":
			populationIdx = i
		case "Admin2":
			admin2Idx = i
		}
	}
	if stateIdx < 0 || countryIdx < 0 || populationIdx < 0 {
		return nil, fmt.Errorf("%w: lookup header %v", ErrSchemaMismatch, rows[0])
	}

	lookup := make(schema.PopulationLookup)
	for _, row := range rows[1:] {
		// county-level rows share the (state, country) key of their
		// state and would collide with it
		if admin2Idx >= 0 && row[admin2Idx] != "" {
			continue
		}
		cell := row[populationIdx]
		if cell == "" {
			continue
		}
		population, err := strconv.ParseFloat(cell, 64)
		if nil != err {
			return nil, fmt.Errorf("%w: %q for %s/%s", ErrInvalidPopulation, cell, row[stateIdx], row[countryIdx])
		}
		key := schema.PopulationKey{State: row[stateIdx], Country: row[countryIdx]}
		if _, ok := lookup[key]; ok {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateRegion, key.State, key.Country)
		}
		lookup[key] = population
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "regions": len(lookup)}).Debug("parsed population lookup")
	return lookup, nil
}
