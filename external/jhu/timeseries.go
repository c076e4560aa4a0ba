package jhu

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/pandemic-report/schema"
)

// The wide time-series files carry four fixed identifying columns
// followed by one column per report date.
var wideHeader = []string{"Province/State", "Country/Region", "Lat", "Long"}

// FetchCases - download the confirmed-case time series
func (c *Client) FetchCases() (*schema.WideSeries, error) {
	data, err := c.get(c.casesURL)
	if nil != err {
		return nil, err
	}
	return parseWideSeries(data)
}

// FetchDeaths - download the death time series
func (c *Client) FetchDeaths() (*schema.WideSeries, error) {
	data, err := c.get(c.deathsURL)
	if nil != err {
		return nil, err
	}
	return parseWideSeries(data)
}

func parseWideSeries(data []byte) (*schema.WideSeries, error) {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if nil != err {
		return nil, fmt.Errorf("%w: %s", ErrSchemaMismatch, err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptyDataset
	}

	header := rows[0]
	if len(header) <= len(wideHeader) {
		return nil, fmt.Errorf("%w: no date columns", ErrSchemaMismatch)
	}
	for i, name := range wideHeader {
		if header[i] != name {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrSchemaMismatch, i, header[i], name)
		}
	}

	series := &schema.WideSeries{
		Dates: header[len(wideHeader):],
		Rows:  make([]schema.WideRow, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		values := make([]float64, len(series.Dates))
		for i, cell := range row[len(wideHeader):] {
			v, err := strconv.ParseFloat(cell, 64)
			if nil != err {
				return nil, fmt.Errorf("%w: %q in column %q", ErrInvalidValue, cell, series.Dates[i])
			}
			values[i] = v
		}
		series.Rows = append(series.Rows, schema.WideRow{
			State:   row[0],
			Country: row[1],
			Values:  values,
		})
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "rows": len(series.Rows), "dates": len(series.Dates)}).Debug("parsed wide series")
	return series, nil
}
