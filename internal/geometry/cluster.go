package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"propdash/server/internal/models"
)

const (
	// DefaultCellSize is roughly 500m at city latitudes.
	DefaultCellSize = 0.005
	DefaultBaseZoom = 13

	// MinCellSize is about 0.1mm. Smaller cells fall back to DefaultCellSize.
	MinCellSize = 1e-9

	minZoom = 1
	maxZoom = 20
)

type cellKey struct {
	row int64
	col int64
}

type cellAccumulator struct {
	latSum     float64
	lngSum     float64
	properties []models.Property
}

// HasCoordinates reports whether the listing can be placed on the map.
func HasCoordinates(p *models.Property) bool {
	return p.HasCoordinates()
}

// ClusterProperties buckets listings into square grid cells of cellSize
// degrees and returns one cluster per populated cell, in the order cells were
// first seen. Listings without coordinates, or with coordinates that do not
// map to a grid cell, are skipped. A cell size below MinCellSize (or NaN)
// falls back to DefaultCellSize.
func ClusterProperties(properties []models.Property, cellSize float64) []models.Cluster {
	if !(cellSize >= MinCellSize) {
		cellSize = DefaultCellSize
	}

	cells := make(map[cellKey]*cellAccumulator)
	order := make([]cellKey, 0)

	for i := range properties {
		p := &properties[i]
		if !HasCoordinates(p) {
			continue
		}
		lat, lng := *p.Latitude, *p.Longitude
		row, rowOK := cellIndex(lat, cellSize)
		col, colOK := cellIndex(lng, cellSize)
		if !rowOK || !colOK {
			continue
		}
		key := cellKey{row: row, col: col}

		acc, ok := cells[key]
		if !ok {
			acc = &cellAccumulator{}
			cells[key] = acc
			order = append(order, key)
		}
		acc.latSum += lat
		acc.lngSum += lng
		acc.properties = append(acc.properties, *p)
	}

	clusters := make([]models.Cluster, 0, len(order))
	for _, key := range order {
		acc := cells[key]
		n := float64(len(acc.properties))
		clusters = append(clusters, models.Cluster{
			ID:         fmt.Sprintf("%d_%d", key.row, key.col),
			Lat:        acc.latSum / n,
			Lng:        acc.lngSum / n,
			Count:      len(acc.properties),
			Properties: acc.properties,
		})
	}
	return clusters
}

// cellIndex floors v/cellSize, reporting false when the result is not a
// representable int64.
func cellIndex(v, cellSize float64) (int64, bool) {
	q := math.Floor(v / cellSize)
	if math.IsNaN(q) || q < math.MinInt64 || q >= math.MaxInt64 {
		return 0, false
	}
	return int64(q), true
}

// CellSizeForZoom halves the cell for every zoom level above baseZoom and
// doubles it for every level below. zoom is clamped to [1, 20].
func CellSizeForZoom(zoom int, baseCellSize float64, baseZoom int) float64 {
	if !(baseCellSize > 0) {
		baseCellSize = DefaultCellSize
	}
	zoom = max(minZoom, min(maxZoom, zoom))
	return baseCellSize * math.Pow(2, float64(baseZoom-zoom))
}

// WithinBound keeps the listings whose coordinates fall inside bound.
func WithinBound(properties []models.Property, bound orb.Bound) []models.Property {
	inside := make([]models.Property, 0)
	for i := range properties {
		point, ok := properties[i].Point()
		if ok && bound.Contains(point) {
			inside = append(inside, properties[i])
		}
	}
	return inside
}
