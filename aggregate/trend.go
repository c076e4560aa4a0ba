package aggregate

import (
	"sort"
	"time"

	"github.com/bitmark-inc/pandemic-report/schema"
)

const (
	logPrefix = "aggregate"
)

// GlobalTrend sums every region into one worldwide daily series and
// derives new cases/deaths as the difference against the immediately
// preceding date. Metrics missing from a row count as zero in the sums.
// The first date has no predecessor, so its differences stay nil.
func GlobalTrend(observations []schema.Observation) []schema.TrendPoint {
	type sums struct {
		cases  float64
		deaths float64
	}
	daily := make(map[time.Time]*sums)
	for _, o := range observations {
		s, ok := daily[o.Date]
		if !ok {
			s = &sums{}
			daily[o.Date] = s
		}
		if o.Cases != nil {
			s.cases += *o.Cases
		}
		if o.Deaths != nil {
			s.deaths += *o.Deaths
		}
	}

	dates := make([]time.Time, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	points := make([]schema.TrendPoint, len(dates))
	for i, d := range dates {
		points[i] = schema.TrendPoint{
			Date:   d,
			Cases:  daily[d].cases,
			Deaths: daily[d].deaths,
		}
		if i > 0 {
			points[i].NewCases = schema.Float64(points[i].Cases - points[i-1].Cases)
			points[i].NewDeaths = schema.Float64(points[i].Deaths - points[i-1].Deaths)
		}
	}
	return points
}
