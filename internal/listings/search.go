package listings

import (
	"strings"

	"propdash/server/internal/models"
)

// MatchesSearch reports whether query occurs, case-insensitively, in the
// formatted address, city, zip code or street. An empty query matches.
func MatchesSearch(property *models.Property, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(property.FormattedAddress), q) ||
		strings.Contains(strings.ToLower(property.City), q) ||
		strings.Contains(strings.ToLower(property.ZipCode), q) ||
		strings.Contains(strings.ToLower(property.Street), q)
}

// Filter returns the listings matching query. The input is returned as is for
// an empty query.
func Filter(properties []models.Property, query string) []models.Property {
	if query == "" {
		return properties
	}
	matched := make([]models.Property, 0)
	for i := range properties {
		if MatchesSearch(&properties[i], query) {
			matched = append(matched, properties[i])
		}
	}
	return matched
}

// ChunkIntoRows splits items into rows of columns items; the last row may be
// shorter. A non-positive column count puts everything into one row.
func ChunkIntoRows[T any](items []T, columns int) [][]T {
	rows := make([][]T, 0)
	if len(items) == 0 {
		return rows
	}
	if columns <= 0 {
		columns = len(items)
	}
	for start := 0; start < len(items); start += columns {
		end := min(start+columns, len(items))
		rows = append(rows, items[start:end:end])
	}
	return rows
}
