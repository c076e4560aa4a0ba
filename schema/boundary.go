package schema

import "encoding/json"

type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Boundary is one country outline from the world boundary dataset,
// keyed by its display name. The choropleth joins totals against Name.
type Boundary struct {
	Name     string
	Geometry Geometry
}

type GeoFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

type GeoJSON struct {
	Name     string       `json:"name"`
	Features []GeoFeature `json:"features"`
}
