package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/pandemic-report/schema"
)

const (
	mapWidth  = 960
	mapHeight = 480
)

var (
	ErrNoBoundaries = fmt.Errorf("no boundary features to draw")
)

// RenderChoropleth draws the world map with each country shaded by its
// total case count, joined against the boundary features by the
// map-compatible country name. Countries without data keep a neutral
// fill; totals without a matching boundary are logged, not fatal, since
// small territories are routinely missing from world boundary files.
func RenderChoropleth(w io.Writer, totals []schema.CountryMapTotal, boundaries []schema.Boundary) error {
	if len(boundaries) == 0 {
		return ErrNoBoundaries
	}

	cases := make(map[string]float64, len(totals))
	maxCases := float64(0)
	for _, t := range totals {
		cases[t.Country] = t.Cases
		if t.Cases > maxCases {
			maxCases = t.Cases
		}
	}

	canvas := svg.New(w)
	canvas.Start(mapWidth, mapHeight)
	canvas.Rect(0, 0, mapWidth, mapHeight, "fill:#ffffff")

	drawn := make(map[string]bool, len(boundaries))
	for _, boundary := range boundaries {
		style := "fill:#d9d9d9;stroke:#878787;stroke-width:0.2"
		if v, ok := cases[boundary.Name]; ok {
			style = fmt.Sprintf("fill:%s;stroke:#878787;stroke-width:0.2", shade(v, maxCases))
			drawn[boundary.Name] = true
		}

		paths, err := geometryPaths(boundary.Geometry)
		if nil != err {
			return fmt.Errorf("boundary %s: %s", boundary.Name, err)
		}
		for _, d := range paths {
			canvas.Path(d, style)
		}
	}
	canvas.Text(10, mapHeight-10, "total confirmed cases", "font-family:sans-serif;font-size:12px;fill:#404040")
	canvas.End()

	for _, t := range totals {
		if !drawn[t.Country] {
			log.WithFields(log.Fields{"prefix": logPrefix, "country": t.Country}).Debug("no boundary for country")
		}
	}
	return nil
}

// shade maps a case count onto a light-to-dark red ramp on a log scale,
// since totals span several orders of magnitude across countries.
func shade(value, max float64) string {
	t := float64(0)
	if max > 0 {
		t = math.Log10(value+1) / math.Log10(max+1)
	}
	lerp := func(a, b int) int { return a + int(t*float64(b-a)) }
	return fmt.Sprintf("#%02x%02x%02x", lerp(254, 103), lerp(229, 0), lerp(217, 13))
}

func geometryPaths(g schema.Geometry) ([]string, error) {
	switch g.Type {
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(g.Coordinates, &rings); nil != err {
			return nil, err
		}
		return []string{ringsPath(rings)}, nil
	case "MultiPolygon":
		var polygons [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &polygons); nil != err {
			return nil, err
		}
		paths := make([]string, 0, len(polygons))
		for _, rings := range polygons {
			paths = append(paths, ringsPath(rings))
		}
		return paths, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", g.Type)
	}
}

func ringsPath(rings [][][]float64) string {
	var b strings.Builder
	for _, ring := range rings {
		for i, position := range ring {
			if len(position) < 2 {
				continue
			}
			x, y := project(position[0], position[1])
			if i == 0 {
				fmt.Fprintf(&b, "M%.2f,%.2f", x, y)
			} else {
				fmt.Fprintf(&b, "L%.2f,%.2f", x, y)
			}
		}
		b.WriteString("Z")
	}
	return b.String()
}

// project maps a lon/lat pair onto the canvas with an equirectangular
// projection.
func project(lon, lat float64) (float64, float64) {
	x := (lon + 180) / 360 * mapWidth
	y := (90 - lat) / 180 * mapHeight
	return x, y
}
