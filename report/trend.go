package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bitmark-inc/pandemic-report/schema"
)

// RenderTrend draws the worldwide daily new cases and new deaths as a
// dual-series line chart. The first date of the series has no
// day-over-day value and is not drawn.
func RenderTrend(path string, points []schema.TrendPoint) error {
	p, err := plot.New()
	if nil != err {
		return err
	}
	p.Title.Text = "Worldwide daily new cases and deaths"
	p.X.Label.Text = "date"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Y.Label.Text = "count"

	var cases, deaths plotter.XYs
	for _, point := range points {
		if point.NewCases == nil || point.NewDeaths == nil {
			continue
		}
		x := float64(point.Date.Unix())
		cases = append(cases, plotter.XY{X: x, Y: *point.NewCases})
		deaths = append(deaths, plotter.XY{X: x, Y: *point.NewDeaths})
	}

	caseLine, err := plotter.NewLine(cases)
	if nil != err {
		return err
	}
	caseLine.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	caseLine.Width = vg.Points(1)

	deathLine, err := plotter.NewLine(deaths)
	if nil != err {
		return err
	}
	deathLine.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	deathLine.Width = vg.Points(1)

	p.Add(caseLine, deathLine)
	p.Legend.Add("new cases", caseLine)
	p.Legend.Add("new deaths", deathLine)
	p.Legend.Top = true

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}
