package schema

import "time"

// WideSeries is a raw time series as published upstream: one row per
// region, one column per report date. Dates keeps the column order of
// the source file; every row carries exactly len(Dates) values.
type WideSeries struct {
	Dates []string
	Rows  []WideRow
}

type WideRow struct {
	State   string
	Country string
	Values  []float64
}

// Record is one cell of a wide series after the melt: a single metric
// value for a single region and date.
type Record struct {
	State   string
	Country string
	Date    time.Time
	Value   float64
}

// PopulationKey identifies one row of the population lookup.
type PopulationKey struct {
	State   string
	Country string
}

// PopulationLookup maps a region to its static population figure.
type PopulationLookup map[PopulationKey]float64
