package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5250", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "data/properties.json", cfg.Feed.Source)
	assert.Equal(t, 10*time.Second, cfg.FeedTimeout())
	assert.Equal(t, 3, cfg.Feed.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.RetryDelay())
	assert.Equal(t, time.Duration(0), cfg.RefreshInterval())
	assert.Equal(t, 0.005, cfg.Clustering.BaseCellSize)
	assert.Equal(t, 13, cfg.Clustering.BaseZoom)
	assert.Equal(t, 0.8, cfg.Policy.OpportunityRatio)
	assert.Equal(t, 60, cfg.Policy.RiskCutoffDays)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://dash.example.com")
	t.Setenv("FEED_SOURCE", "https://example.com/properties.json")
	t.Setenv("FEED_REFRESH_INTERVAL", "15")
	t.Setenv("OPPORTUNITY_RATIO", "0.75")
	t.Setenv("RISK_CUTOFF_DAYS", "90")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://dash.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://example.com/properties.json", cfg.Feed.Source)
	assert.Equal(t, 15*time.Minute, cfg.RefreshInterval())
	assert.Equal(t, 0.75, cfg.Policy.OpportunityRatio)
	assert.Equal(t, 90, cfg.Policy.RiskCutoffDays)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unparseable number", key: "FEED_MAX_RETRIES", value: "many"},
		{name: "negative retries", key: "FEED_MAX_RETRIES", value: "-1"},
		{name: "zero cell size", key: "CLUSTER_BASE_CELL_SIZE", value: "0"},
		{name: "ratio above one", key: "OPPORTUNITY_RATIO", value: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestGetViewportNames(t *testing.T) {
	names := GetViewportNames()
	assert.Equal(t, "miami", names[0])
	assert.Contains(t, names, "coral-gables")
	assert.Len(t, names, len(SupportedViewports))
}

func TestGetViewportByName(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedZoom int
		expectNil    bool
	}{
		{name: "default", input: "miami", expectedZoom: 11},
		{name: "case insensitive", input: "Miami-Beach", expectedZoom: 13},
		{name: "unknown", input: "orlando", expectNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := GetViewportByName(tt.input)
			if tt.expectNil {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.expectedZoom, v.ZoomLevel)
		})
	}
}

func TestDefaultViewportCenter(t *testing.T) {
	assert.InDelta(t, 25.7617, DefaultViewport.Center[0], 0.0001)
	assert.InDelta(t, -80.1918, DefaultViewport.Center[1], 0.0001)
}
