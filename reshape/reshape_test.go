package reshape_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pandemic-report/reshape"
	"github.com/bitmark-inc/pandemic-report/schema"
)

func TestMelt(t *testing.T) {
	series := &schema.WideSeries{
		Dates: []string{"1/22/20", "1/23/20", "2/1/20"},
		Rows: []schema.WideRow{
			{State: "", Country: "Italy", Values: []float64{0, 2, 5}},
			{State: "Hubei", Country: "China", Values: []float64{444, 444, 11177}},
		},
	}

	records, err := reshape.Melt(series)
	assert.NoError(t, err)
	assert.Equal(t, 6, len(records), "rows x dates")

	// every (region, date) pair appears exactly once
	type key struct {
		state   string
		country string
		date    time.Time
	}
	seen := make(map[key]bool)
	for _, r := range records {
		k := key{r.State, r.Country, r.Date}
		assert.False(t, seen[k], "duplicate key %+v", k)
		seen[k] = true
	}

	assert.Equal(t, schema.Record{
		State:   "",
		Country: "Italy",
		Date:    time.Date(2020, 1, 22, 0, 0, 0, 0, time.UTC),
		Value:   0,
	}, records[0])
	assert.Equal(t, time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC), records[2].Date)
	assert.Equal(t, float64(11177), records[5].Value)
}

func TestMeltBadDateHeader(t *testing.T) {
	cases := []string{"Lat", "2020-01-22", "1/32/20", ""}
	for _, header := range cases {
		series := &schema.WideSeries{
			Dates: []string{"1/22/20", header},
			Rows:  []schema.WideRow{{Country: "Italy", Values: []float64{1, 2}}},
		}
		records, err := reshape.Melt(series)
		assert.Nil(t, records)
		assert.True(t, errors.Is(err, reshape.ErrBadDateHeader), "header %q: %v", header, err)
	}
}

func TestMeltRaggedRow(t *testing.T) {
	series := &schema.WideSeries{
		Dates: []string{"1/22/20", "1/23/20"},
		Rows:  []schema.WideRow{{Country: "Italy", Values: []float64{1}}},
	}
	_, err := reshape.Melt(series)
	assert.True(t, errors.Is(err, reshape.ErrRaggedRow))
}

func TestMeltEmpty(t *testing.T) {
	records, err := reshape.Melt(&schema.WideSeries{})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(records))
}
