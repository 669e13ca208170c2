// Package stats computes the dashboard summary over a property collection.
package stats

import (
	"math"
	"slices"

	"propdash/server/internal/models"
)

// DefaultOpportunityRatio flags listings priced more than 20% below the
// mean price per square foot.
const DefaultOpportunityRatio = 0.8

// Aggregator computes DashboardStats. OpportunityRatio is the fraction of the
// mean price per square foot below which a listing counts as an opportunity.
type Aggregator struct {
	OpportunityRatio float64
}

func NewAggregator(opportunityRatio float64) Aggregator {
	if opportunityRatio <= 0 || math.IsNaN(opportunityRatio) {
		opportunityRatio = DefaultOpportunityRatio
	}
	return Aggregator{OpportunityRatio: opportunityRatio}
}

// CalculateStats uses DefaultOpportunityRatio.
func CalculateStats(properties []models.Property) models.DashboardStats {
	return NewAggregator(DefaultOpportunityRatio).Calculate(properties)
}

// Calculate only considers listings with a positive price. An input without
// any such listing yields zero stats.
func (a Aggregator) Calculate(properties []models.Property) models.DashboardStats {
	prices := make([]float64, 0, len(properties))
	var totalPrice, totalPricePerSqft, totalDays float64
	for i := range properties {
		p := &properties[i]
		if !(p.Price > 0) {
			continue
		}
		prices = append(prices, p.Price)
		totalPrice += p.Price
		totalPricePerSqft += orZero(p.PricePerSqft)
		totalDays += float64(p.DaysOnMLS)
	}

	count := len(prices)
	if count == 0 {
		return models.DashboardStats{}
	}

	slices.Sort(prices)
	threshold := totalPricePerSqft / float64(count) * a.OpportunityRatio

	opportunities := 0
	for i := range properties {
		p := &properties[i]
		if p.Price > 0 && p.PricePerSqft > 0 && p.PricePerSqft < threshold {
			opportunities++
		}
	}

	return models.DashboardStats{
		TotalProperties: count,
		AvgPrice:        totalPrice / float64(count),
		MedianPrice:     CalculateMedian(prices),
		Opportunities:   opportunities,
		AvgDaysOnMarket: roundHalfUp(totalDays / float64(count)),
		TotalValue:      totalPrice,
	}
}

// CalculateMedian expects sorted values and returns 0 for an empty slice.
func CalculateMedian(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	mid := n / 2
	if n%2 != 0 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
