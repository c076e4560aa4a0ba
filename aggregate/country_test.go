package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pandemic-report/aggregate"
	"github.com/bitmark-inc/pandemic-report/schema"
)

func withPopulation(o schema.Observation, population float64) schema.Observation {
	o.Population = schema.Float64(population)
	return o
}

func TestCountryTotals(t *testing.T) {
	observations := []schema.Observation{
		// two admin-1 rows collapse into one daily figure per country
		withPopulation(obs("North", "X", day(1), 10, 1), 600000),
		withPopulation(obs("South", "X", day(1), 5, 0), 400000),
		withPopulation(obs("North", "X", day(2), 12, 1), 600000),
		withPopulation(obs("South", "X", day(2), 8, 1), 400000),
	}

	totals := aggregate.CountryTotals(observations)
	assert.Equal(t, 1, len(totals))

	x := totals[0]
	assert.Equal(t, "X", x.Country)
	assert.Equal(t, float64(20), x.Cases)
	assert.Equal(t, float64(2), x.Deaths)
	assert.Equal(t, float64(1000000), x.Population)
	assert.Equal(t, float64(20), *x.CasesPerMillion)
	assert.Equal(t, float64(2), *x.DeathsPerMillion)
}

func TestCountryTotalsPerMillion(t *testing.T) {
	observations := []schema.Observation{
		withPopulation(obs("", "X", day(1), 100, 0), 200000000),
	}

	totals := aggregate.CountryTotals(observations)
	assert.Equal(t, 1, len(totals))
	assert.Equal(t, float64(0.5), *totals[0].CasesPerMillion)
}

// rows without population cannot contribute to per-capita figures
func TestCountryTotalsNilPopulation(t *testing.T) {
	observations := []schema.Observation{
		obs("", "X", day(1), 10, 1),
	}
	assert.Equal(t, 0, len(aggregate.CountryTotals(observations)))
}

func TestCountryTotalsZeroPopulation(t *testing.T) {
	observations := []schema.Observation{
		withPopulation(obs("", "X", day(1), 10, 1), 0),
	}

	totals := aggregate.CountryTotals(observations)
	assert.Equal(t, 1, len(totals))
	assert.Nil(t, totals[0].CasesPerMillion, "zero population must not divide")
	assert.Nil(t, totals[0].DeathsPerMillion)
}

// max over dates stands in for the latest cumulative figure
func TestCountryTotalsMax(t *testing.T) {
	observations := []schema.Observation{
		withPopulation(obs("", "X", day(3), 50, 5), 1000000),
		withPopulation(obs("", "X", day(1), 10, 1), 1000000),
		withPopulation(obs("", "X", day(2), 30, 2), 1000000),
	}

	totals := aggregate.CountryTotals(observations)
	assert.Equal(t, float64(50), totals[0].Cases)
	assert.Equal(t, float64(5), totals[0].Deaths)
}

func TestCountryMapTotals(t *testing.T) {
	observations := []schema.Observation{
		obs("Alabama", "US", day(1), 7, 0),
		obs("Alaska", "US", day(1), 3, 1),
		obs("", "Burma", day(1), 4, 0),
		obs("", "Iceland", day(1), 2, 0),
	}

	totals := aggregate.CountryMapTotals(observations)

	byCountry := make(map[string]schema.CountryMapTotal)
	for _, total := range totals {
		byCountry[total.Country] = total
	}

	usa, ok := byCountry["USA"]
	assert.True(t, ok, "US renamed for the boundary join")
	assert.Equal(t, float64(10), usa.Cases)
	assert.Equal(t, float64(1), usa.Deaths)

	_, ok = byCountry["Myanmar"]
	assert.True(t, ok)
	_, ok = byCountry["Iceland"]
	assert.True(t, ok, "unmapped names pass through")
	_, ok = byCountry["US"]
	assert.False(t, ok)
}

func TestCountryTotalsSingleCountry(t *testing.T) {
	observations := []schema.Observation{
		withPopulation(obs("", "X", day(1), 10, 1), 1000000),
		withPopulation(obs("", "X", day(2), 15, 2), 1000000),
	}

	totals := aggregate.CountryTotals(observations)
	assert.Equal(t, 1, len(totals))
	assert.Equal(t, float64(15), totals[0].Cases)
	assert.Equal(t, float64(2), totals[0].Deaths)
	assert.Equal(t, float64(15), *totals[0].CasesPerMillion)
	assert.Equal(t, float64(2), *totals[0].DeathsPerMillion)
}
