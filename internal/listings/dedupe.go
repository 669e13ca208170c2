// Package listings prepares property collections for the card list:
// de-duplication, free-text search, sorting and row chunking.
package listings

import "propdash/server/internal/models"

// DeduplicateByID keeps the first occurrence of every id, in input order.
func DeduplicateByID(properties []models.Property) []models.Property {
	seen := make(map[string]struct{}, len(properties))
	unique := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}
