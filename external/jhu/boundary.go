package jhu

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/pandemic-report/schema"
)

// boundary datasets disagree on the property holding the display name
var boundaryNameKeys = []string{"name", "NAME", "ADMIN", "COUNTRY"}

// FetchBoundary - download the world boundary GeoJSON used by the
// choropleth. Features whose name property is missing are rejected,
// since a nameless outline can never be joined against the totals.
func (c *Client) FetchBoundary() ([]schema.Boundary, error) {
	data, err := c.get(c.boundaryURL)
	if nil != err {
		return nil, err
	}

	var result schema.GeoJSON
	if err := json.Unmarshal(data, &result); nil != err {
		return nil, fmt.Errorf("%w: %s", ErrSchemaMismatch, err)
	}
	if len(result.Features) == 0 {
		return nil, ErrEmptyDataset
	}

	boundaries := make([]schema.Boundary, 0, len(result.Features))
	for _, feature := range result.Features {
		name := ""
		for _, key := range boundaryNameKeys {
			if v, ok := feature.Properties[key].(string); ok && v != "" {
				name = v
				break
			}
		}
		if name == "" {
			return nil, fmt.Errorf("%w: feature without a name property, %+v", ErrSchemaMismatch, feature.Properties)
		}
		boundaries = append(boundaries, schema.Boundary{
			Name:     name,
			Geometry: feature.Geometry,
		})
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "features": len(boundaries)}).Debug("parsed boundary file")
	return boundaries, nil
}
