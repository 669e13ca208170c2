package listings

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"propdash/server/internal/models"
)

// SortOrder names one of the list orderings offered by the dashboard.
type SortOrder string

const (
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortSqftDesc  SortOrder = "sqft_desc"
	SortNewest    SortOrder = "newest"

	DefaultSortOrder = SortPriceDesc
)

var ErrUnknownSortOrder = errors.New("unknown sort order")

// SortOrders lists the supported orderings, default first.
var SortOrders = []SortOrder{SortPriceDesc, SortPriceAsc, SortNewest, SortSqftDesc}

var listDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
}

// ParseSortOrder maps a request value to a SortOrder. The empty string
// selects DefaultSortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	if s == "" {
		return DefaultSortOrder, nil
	}
	for _, order := range SortOrders {
		if string(order) == s {
			return order, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortOrder, s)
}

// Sort returns a sorted copy of properties. Equal keys keep their input order.
func Sort(properties []models.Property, order SortOrder) []models.Property {
	sorted := slices.Clone(properties)
	switch order {
	case SortPriceAsc:
		slices.SortStableFunc(sorted, func(a, b models.Property) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(sorted, func(a, b models.Property) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortSqftDesc:
		slices.SortStableFunc(sorted, func(a, b models.Property) int {
			return cmp.Compare(b.Sqft, a.Sqft)
		})
	case SortNewest:
		sortNewest(sorted)
	}
	return sorted
}

func sortNewest(properties []models.Property) {
	type keyed struct {
		listed   time.Time
		property models.Property
	}
	keys := make([]keyed, len(properties))
	for i, p := range properties {
		keys[i] = keyed{listed: ParseListDate(p.ListDate), property: p}
	}
	slices.SortStableFunc(keys, func(a, b keyed) int {
		return b.listed.Compare(a.listed)
	})
	for i := range keys {
		properties[i] = keys[i].property
	}
}

// ParseListDate accepts the date layouts seen in listing feeds. Unparseable
// values map to the zero time so they sort as the oldest listings.
func ParseListDate(s string) time.Time {
	for _, layout := range listDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Query is a search string plus sort selection.
type Query struct {
	Search string
	Sort   SortOrder
}

// Apply filters first and then sorts.
func Apply(properties []models.Property, q Query) []models.Property {
	return Sort(Filter(properties, q.Search), q.Sort)
}
