package reshape

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/pandemic-report/schema"
)

const (
	logPrefix = "reshape"

	// upstream date headers look like "1/22/20"
	dateLayout = "1/2/06"
)

var (
	ErrBadDateHeader = fmt.Errorf("date header does not parse")
	ErrRaggedRow     = fmt.Errorf("row width does not match date columns")
)

// Melt turns a wide series into its long form: one record per
// (region, date) cell, with the latitude/longitude identifying columns
// already dropped by the ingestion step. A header that does not parse
// as a date is an error, not a skip — skipping would silently shrink
// the covered time range.
func Melt(series *schema.WideSeries) ([]schema.Record, error) {
	dates := make([]time.Time, len(series.Dates))
	for i, header := range series.Dates {
		d, err := time.Parse(dateLayout, header)
		if nil != err {
			return nil, fmt.Errorf("%w: column %q", ErrBadDateHeader, header)
		}
		dates[i] = d.UTC()
	}

	records := make([]schema.Record, 0, len(series.Rows)*len(dates))
	for _, row := range series.Rows {
		if len(row.Values) != len(dates) {
			return nil, fmt.Errorf("%w: %s/%s has %d values, want %d", ErrRaggedRow, row.State, row.Country, len(row.Values), len(dates))
		}
		for i, date := range dates {
			records = append(records, schema.Record{
				State:   row.State,
				Country: row.Country,
				Date:    date,
				Value:   row.Values[i],
			})
		}
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "records": len(records)}).Debug("melted wide series")
	return records, nil
}
