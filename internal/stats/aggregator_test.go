package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"propdash/server/internal/models"
)

func property(id string, price, pricePerSqft float64, daysOnMLS int) models.Property {
	return models.Property{ID: id, Price: price, PricePerSqft: pricePerSqft, DaysOnMLS: daysOnMLS}
}

func TestCalculateMedian(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{name: "empty", input: nil, expected: 0},
		{name: "single", input: []float64{42}, expected: 42},
		{name: "odd", input: []float64{1, 2, 3}, expected: 2},
		{name: "even", input: []float64{1, 2, 3, 4}, expected: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateMedian(tt.input))
		})
	}
}

func TestCalculateStats_Empty(t *testing.T) {
	assert.Equal(t, models.DashboardStats{}, CalculateStats(nil))
	assert.Equal(t, models.DashboardStats{}, CalculateStats([]models.Property{}))
}

func TestCalculateStats_ExcludesNonPositivePrices(t *testing.T) {
	stats := CalculateStats([]models.Property{
		property("zero", 0, 100, 10),
		property("negative", -5000, 100, 10),
		property("nan", math.NaN(), 100, 10),
	})
	assert.Equal(t, models.DashboardStats{}, stats)

	stats = CalculateStats([]models.Property{
		property("zero", 0, 100, 90),
		property("ok", 400000, 200, 30),
	})
	assert.Equal(t, 1, stats.TotalProperties)
	assert.Equal(t, 400000.0, stats.AvgPrice)
	assert.Equal(t, 30, stats.AvgDaysOnMarket)
}

func TestCalculateStats_AverageAndTotal(t *testing.T) {
	stats := CalculateStats([]models.Property{
		property("1", 300000, 0, 0),
		property("2", 600000, 0, 0),
	})

	assert.Equal(t, 2, stats.TotalProperties)
	assert.Equal(t, 450000.0, stats.AvgPrice)
	assert.Equal(t, 450000.0, stats.MedianPrice)
	assert.Equal(t, 900000.0, stats.TotalValue)
}

func TestCalculateStats_MedianIsOrderIndependent(t *testing.T) {
	stats := CalculateStats([]models.Property{
		property("1", 900000, 0, 0),
		property("2", 100000, 0, 0),
		property("3", 500000, 0, 0),
	})

	assert.Equal(t, 500000.0, stats.MedianPrice)
}

func TestCalculateStats_Opportunities(t *testing.T) {
	// Mean price per sqft is (100+500+600+0)/4 = 300; threshold is 240.
	stats := CalculateStats([]models.Property{
		property("cheap", 200000, 100, 0),
		property("market", 500000, 500, 0),
		property("pricey", 600000, 600, 0),
		property("missing", 300000, 0, 0),
	})

	assert.Equal(t, 1, stats.Opportunities)
}

func TestCalculateStats_OpportunityIgnoresUnpricedListings(t *testing.T) {
	stats := CalculateStats([]models.Property{
		property("unpriced", 0, 10, 0),
		property("a", 500000, 500, 0),
		property("b", 500000, 500, 0),
	})

	assert.Equal(t, 0, stats.Opportunities)
}

func TestAggregator_CustomRatio(t *testing.T) {
	properties := []models.Property{
		property("a", 500000, 250, 0),
		property("b", 500000, 350, 0),
	}

	assert.Equal(t, 0, NewAggregator(0.8).Calculate(properties).Opportunities)
	assert.Equal(t, 1, NewAggregator(0.9).Calculate(properties).Opportunities)
	assert.Equal(t, DefaultOpportunityRatio, NewAggregator(0).OpportunityRatio)
}

func TestCalculateStats_DaysOnMarketRounding(t *testing.T) {
	tests := []struct {
		name     string
		days     []int
		expected int
	}{
		{name: "rounds half up", days: []int{10, 11}, expected: 11},
		{name: "rounds down", days: []int{10, 10, 11}, expected: 10},
		{name: "rounds up", days: []int{10, 11, 11}, expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var properties []models.Property
			for _, d := range tt.days {
				properties = append(properties, property("p", 100000, 0, d))
			}
			assert.Equal(t, tt.expected, CalculateStats(properties).AvgDaysOnMarket)
		})
	}
}
