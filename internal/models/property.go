package models

import "github.com/paulmach/orb"

// Property is a single listing as delivered by the listings feed.
type Property struct {
	ID               string   `json:"id"`
	URL              string   `json:"url"`
	Status           string   `json:"status"`
	Price            float64  `json:"price"`
	Beds             int      `json:"beds"`
	BathsFull        int      `json:"baths_full"`
	BathsHalf        int      `json:"baths_half"`
	Sqft             float64  `json:"sqft"`
	YearBuilt        *int     `json:"year_built"`
	LotSqft          float64  `json:"lot_sqft"`
	Style            string   `json:"style"`
	PropertyType     string   `json:"property_type"`
	Description      string   `json:"description"`
	Street           string   `json:"street"`
	Unit             string   `json:"unit"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	ZipCode          string   `json:"zip_code"`
	FormattedAddress string   `json:"formatted_address"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	PrimaryPhoto     string   `json:"primary_photo"`
	Photos           []string `json:"photos"`
	AgentName        string   `json:"agent_name"`
	AgentPhone       string   `json:"agent_phone"`
	AgentEmail       string   `json:"agent_email"`
	DaysOnMLS        int      `json:"days_on_mls"`
	PricePerSqft     float64  `json:"price_per_sqft"`
	HOAFee           float64  `json:"hoa_fee"`
	ListDate         string   `json:"list_date"`
	Neighborhoods    string   `json:"neighborhoods"`
	Stories          int      `json:"stories"`
	Garage           float64  `json:"garage"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (p *Property) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Point returns the listing location in orb (lng, lat) order.
// The second return value is false when the listing has no coordinates.
func (p *Property) Point() (orb.Point, bool) {
	if !p.HasCoordinates() {
		return orb.Point{}, false
	}
	return orb.Point{*p.Longitude, *p.Latitude}, true
}

// Baths counts half baths as 0.5.
func (p *Property) Baths() float64 {
	return float64(p.BathsFull) + float64(p.BathsHalf)*0.5
}

// DashboardStats summarises a property collection for the dashboard header.
type DashboardStats struct {
	TotalProperties int     `json:"total_properties"`
	AvgPrice        float64 `json:"avg_price"`
	MedianPrice     float64 `json:"median_price"`
	Opportunities   int     `json:"opportunities"`
	AvgDaysOnMarket int     `json:"avg_days_on_market"`
	TotalValue      float64 `json:"total_value"`
}

// Cluster groups nearby listings into a single map marker.
type Cluster struct {
	ID         string     `json:"id"`
	Lat        float64    `json:"lat"`
	Lng        float64    `json:"lng"`
	Count      int        `json:"count"`
	Properties []Property `json:"properties"`
}

// Center returns the cluster centroid in orb (lng, lat) order.
func (c Cluster) Center() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}
