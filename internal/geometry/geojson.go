// Package geometry turns geo-tagged listings into map markers: grid
// clusters, viewport filtering and GeoJSON output for map clients.
package geometry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"propdash/server/internal/models"
)

// ClustersToFeatureCollection renders one Point feature per cluster centroid.
func ClustersToFeatureCollection(clusters []models.Cluster) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range clusters {
		ids := make([]string, len(c.Properties))
		var priceSum float64
		for i, p := range c.Properties {
			ids[i] = p.ID
			priceSum += p.Price
		}

		feature := geojson.NewFeature(c.Center())
		feature.ID = c.ID
		feature.Properties = geojson.Properties{
			"cluster_id":   c.ID,
			"count":        c.Count,
			"property_ids": ids,
			"avg_price":    priceSum / float64(max(c.Count, 1)),
		}
		fc.Append(feature)
	}
	return fc
}

// ParseBound reads "minLng,minLat,maxLng,maxLat".
func ParseBound(s string) (orb.Bound, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return orb.Bound{}, fmt.Errorf("bbox must have 4 comma separated values, got %d", len(parts))
	}

	var values [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("failed to parse bbox value %q: %w", part, err)
		}
		values[i] = v
	}

	if values[0] > values[2] || values[1] > values[3] {
		return orb.Bound{}, fmt.Errorf("bbox minimum exceeds maximum")
	}

	return orb.Bound{
		Min: orb.Point{values[0], values[1]},
		Max: orb.Point{values[2], values[3]},
	}, nil
}
