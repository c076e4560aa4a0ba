package aggregate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pandemic-report/aggregate"
	"github.com/bitmark-inc/pandemic-report/schema"
)

func day(d int) time.Time {
	return time.Date(2020, 3, d, 0, 0, 0, 0, time.UTC)
}

func obs(state, country string, date time.Time, cases, deaths float64) schema.Observation {
	return schema.Observation{
		State:   state,
		Country: country,
		Date:    date,
		Cases:   schema.Float64(cases),
		Deaths:  schema.Float64(deaths),
	}
}

func TestGlobalTrend(t *testing.T) {
	observations := []schema.Observation{
		// out of order on purpose, regions summed per date
		obs("", "B", day(2), 30, 3),
		obs("", "A", day(1), 10, 1),
		obs("", "B", day(1), 5, 0),
		obs("", "A", day(2), 12, 1),
		obs("", "A", day(3), 20, 2),
		obs("", "B", day(3), 31, 4),
	}

	points := aggregate.GlobalTrend(observations)
	assert.Equal(t, 3, len(points))

	assert.Equal(t, day(1), points[0].Date)
	assert.Equal(t, float64(15), points[0].Cases)
	assert.Nil(t, points[0].NewCases, "first date has no prior value")
	assert.Nil(t, points[0].NewDeaths)

	for i := 1; i < len(points); i++ {
		assert.Equal(t, points[i].Cases-points[i-1].Cases, *points[i].NewCases)
		assert.Equal(t, points[i].Deaths-points[i-1].Deaths, *points[i].NewDeaths)
	}
	assert.Equal(t, float64(27), *points[1].NewCases)
	assert.Equal(t, float64(3), *points[1].NewDeaths)
	assert.Equal(t, float64(9), *points[2].NewCases)
}

// a metric missing from a row counts as zero in the daily sums
func TestGlobalTrendNilMetrics(t *testing.T) {
	observations := []schema.Observation{
		{Country: "A", Date: day(1), Cases: schema.Float64(10)},
		{Country: "A", Date: day(2), Cases: schema.Float64(14), Deaths: schema.Float64(1)},
	}

	points := aggregate.GlobalTrend(observations)
	assert.Equal(t, 2, len(points))
	assert.Equal(t, float64(0), points[0].Deaths)
	assert.Equal(t, float64(4), *points[1].NewCases)
	assert.Equal(t, float64(1), *points[1].NewDeaths)
}

func TestGlobalTrendEmpty(t *testing.T) {
	assert.Equal(t, 0, len(aggregate.GlobalTrend(nil)))
}
