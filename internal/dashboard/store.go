package dashboard

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"

	"propdash/server/internal/geometry"
	"propdash/server/internal/listings"
	"propdash/server/internal/models"
	"propdash/server/internal/owners"
	"propdash/server/internal/stats"
)

var ErrPropertyNotFound = errors.New("property not found")

type ClusterConfig struct {
	BaseCellSize float64
	BaseZoom     int
}

// SearchResult is a filtered and sorted view of one snapshot.
type SearchResult struct {
	Properties []models.Property
	// Total is the size of the snapshot the search ran against
	Total   int
	Version uint64
}

type searchMemo struct {
	query  listings.Query
	result SearchResult
}

// Store holds the current listings snapshot and everything derived from it.
type Store struct {
	mu         sync.RWMutex
	properties []models.Property
	index      map[string]int
	stats      models.DashboardStats
	version    uint64

	aggregator stats.Aggregator
	owners     *owners.Generator
	clustering ClusterConfig

	memoMu sync.Mutex
	memo   *searchMemo
}

func NewStore(aggregator stats.Aggregator, generator *owners.Generator, clustering ClusterConfig) *Store {
	if generator == nil {
		generator = owners.NewGenerator()
	}
	if !(clustering.BaseCellSize > 0) {
		clustering.BaseCellSize = geometry.DefaultCellSize
	}
	if clustering.BaseZoom == 0 {
		clustering.BaseZoom = geometry.DefaultBaseZoom
	}

	return &Store{
		properties: []models.Property{},
		index:      map[string]int{},
		aggregator: aggregator,
		owners:     generator,
		clustering: clustering,
	}
}

// Replace swaps in a new snapshot. Duplicate ids keep their first occurrence.
func (s *Store) Replace(properties []models.Property) int {
	unique := listings.DeduplicateByID(properties)
	index := make(map[string]int, len(unique))
	for i := range unique {
		index[unique[i].ID] = i
	}
	summary := s.aggregator.Calculate(unique)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties = unique
	s.index = index
	s.stats = summary
	s.version++
	return len(unique)
}

// Properties returns the snapshot in feed order. Callers must not modify it.
func (s *Store) Properties() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.properties
}

func (s *Store) Stats() models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) Property(id string) (models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return models.Property{}, ErrPropertyNotFound
	}
	return s.properties[i], nil
}

// Search filters and sorts the snapshot. The last result is reused while
// neither the snapshot nor the query changes.
func (s *Store) Search(q listings.Query) SearchResult {
	s.mu.RLock()
	properties, version := s.properties, s.version
	s.mu.RUnlock()

	s.memoMu.Lock()
	defer s.memoMu.Unlock()
	if s.memo != nil && s.memo.result.Version == version && s.memo.query == q {
		return s.memo.result
	}

	result := SearchResult{
		Properties: listings.Apply(properties, q),
		Total:      len(properties),
		Version:    version,
	}
	s.memo = &searchMemo{query: q, result: result}
	return result
}

// Clusters groups the snapshot for the given zoom level. A nil bound
// clusters every listing with coordinates.
func (s *Store) Clusters(zoom int, bound *orb.Bound) []models.Cluster {
	properties := s.Properties()
	if bound != nil {
		properties = geometry.WithinBound(properties, *bound)
	}
	cellSize := geometry.CellSizeForZoom(zoom, s.clustering.BaseCellSize, s.clustering.BaseZoom)
	return geometry.ClusterProperties(properties, cellSize)
}

func (s *Store) Owner(id string) (models.OwnerInfo, error) {
	property, err := s.Property(id)
	if err != nil {
		return models.OwnerInfo{}, err
	}
	return s.owners.Generate(property), nil
}
