package report

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bitmark-inc/pandemic-report/schema"
)

var (
	ErrNotEnoughData = fmt.Errorf("not enough data points for regression")
)

// Regression is an ordinary least squares fit of deaths per million
// against cases per million across countries.
type Regression struct {
	Alpha float64 // intercept
	Beta  float64 // slope
	R2    float64
	N     int
}

// FitDeathRate fits deaths_per_million ~ cases_per_million over every
// country with defined rates.
func FitDeathRate(totals []schema.CountryTotal) (*Regression, error) {
	var xs, ys []float64
	for _, t := range totals {
		if t.CasesPerMillion == nil || t.DeathsPerMillion == nil {
			continue
		}
		xs = append(xs, *t.CasesPerMillion)
		ys = append(ys, *t.DeathsPerMillion)
	}
	if len(xs) < 2 {
		return nil, ErrNotEnoughData
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return &Regression{
		Alpha: alpha,
		Beta:  beta,
		R2:    stat.RSquared(xs, ys, nil, alpha, beta),
		N:     len(xs),
	}, nil
}

// Write prints the fit summary.
func (r *Regression) Write(w io.Writer) {
	fmt.Fprintf(w, "deaths_per_million ~ cases_per_million (n = %d)\n", r.N)
	fmt.Fprintf(w, "  intercept: %.4f\n", r.Alpha)
	fmt.Fprintf(w, "  slope:     %.6f\n", r.Beta)
	fmt.Fprintf(w, "  r-squared: %.4f\n", r.R2)
}

// RenderRegression draws the country scatter with the fitted line.
func RenderRegression(path string, totals []schema.CountryTotal, r *Regression) error {
	p, err := plot.New()
	if nil != err {
		return err
	}
	p.Title.Text = "Deaths vs. cases per million, by country"
	p.X.Label.Text = "cases per million"
	p.Y.Label.Text = "deaths per million"

	pts := make(plotter.XYs, 0, len(totals))
	for _, t := range totals {
		if t.CasesPerMillion == nil || t.DeathsPerMillion == nil {
			continue
		}
		pts = append(pts, plotter.XY{X: *t.CasesPerMillion, Y: *t.DeathsPerMillion})
	}

	scatter, err := plotter.NewScatter(pts)
	if nil != err {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(scatter)

	fit := plotter.NewFunction(func(x float64) float64 { return r.Alpha + r.Beta*x })
	fit.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	fit.Width = vg.Points(1.5)
	p.Add(fit)
	p.Legend.Add("ols fit", fit)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
