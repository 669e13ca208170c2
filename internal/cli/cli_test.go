package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propdash/server/internal/models"
)

const testFeed = `[
  {"id": "test-123", "price": 500000, "sqft": 2000, "price_per_sqft": 250, "beds": 3, "baths_full": 2,
   "street": "123 Main St", "city": "Miami", "zip_code": "33131", "formatted_address": "123 Main St, Miami, FL 33131",
   "latitude": 25.7601, "longitude": -80.1901, "days_on_mls": 30, "list_date": "2024-01-01"},
  {"id": "b", "price": 900000, "sqft": 3000, "price_per_sqft": 300, "beds": 4, "baths_full": 3, "baths_half": 1,
   "street": "9 Ocean Dr", "city": "Miami Beach", "zip_code": "33139", "formatted_address": "9 Ocean Dr, Miami Beach, FL 33139",
   "latitude": 25.7602, "longitude": -80.1902, "days_on_mls": 90, "list_date": "2024-03-01"},
  {"id": "test-123", "price": 1, "street": "duplicate"}
]`

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeFeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "properties.json")
	require.NoError(t, os.WriteFile(path, []byte(testFeed), 0644))
	return path
}

func TestRootHelp(t *testing.T) {
	out, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, out, "propctl")
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	assert.NotNil(t, root.PersistentFlags().Lookup("feed"))
}

func TestArgs(t *testing.T) {
	feed := writeFeed(t)

	tests := []struct {
		name string
		args []string
	}{
		{"owner without id", []string{"owner", "--feed", feed}},
		{"owner with two ids", []string{"owner", "a", "b", "--feed", feed}},
		{"stats with args", []string{"stats", "extra", "--feed", feed}},
		{"search with two queries", []string{"search", "a", "b", "--feed", feed}},
		{"bad format", []string{"stats", "--format", "yaml", "--feed", feed}},
		{"bad sort", []string{"search", "--sort", "cheapest", "--feed", feed}},
		{"unknown viewport", []string{"clusters", "--viewport", "atlantis", "--feed", feed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestStats(t *testing.T) {
	feed := writeFeed(t)

	out, err := executeCommand("stats", "--feed", feed)
	require.NoError(t, err)
	assert.Contains(t, out, "Properties:      2")
	assert.Contains(t, out, "US$ 700,000")
	assert.Contains(t, out, "US$ 1,400,000")

	out, err = executeCommand("stats", "--feed", feed, "--format", "json")
	require.NoError(t, err)
	var s models.DashboardStats
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 2, s.TotalProperties)
	assert.Equal(t, 60, s.AvgDaysOnMarket)
}

func TestSearch(t *testing.T) {
	feed := writeFeed(t)

	out, err := executeCommand("search", "ocean", "--feed", feed, "--format", "json")
	require.NoError(t, err)
	var results []models.Property
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "b", results[0].ID)

	out, err = executeCommand("search", "--sort", "price_asc", "--limit", "1", "--feed", feed, "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "test-123", results[0].ID)

	out, err = executeCommand("search", "nowhere", "--feed", feed)
	require.NoError(t, err)
	assert.Contains(t, out, "No properties found.")

	out, err = executeCommand("search", "--feed", feed)
	require.NoError(t, err)
	assert.Contains(t, out, "9 Ocean Dr, Miami Beach, FL 33139")
	assert.Contains(t, out, "US$ 900,000")
}

func TestOwner(t *testing.T) {
	feed := writeFeed(t)

	out, err := executeCommand("owner", "test-123", "--feed", feed, "--format", "json")
	require.NoError(t, err)
	var owner models.OwnerInfo
	require.NoError(t, json.Unmarshal([]byte(out), &owner))
	assert.Equal(t, "Coconut Grove Ventures LLC", owner.Name)
	assert.Equal(t, models.OwnerTypeLLC, owner.Type)
	assert.Equal(t, 500000.0, owner.AcquisitionPrice+owner.EstimatedEquity)

	out, err = executeCommand("owner", "test-123", "--feed", feed)
	require.NoError(t, err)
	assert.Contains(t, out, "Coconut Grove Ventures LLC (LLC)")

	_, err = executeCommand("owner", "missing", "--feed", feed)
	assert.ErrorContains(t, err, "property not found")
}

func TestClusters(t *testing.T) {
	feed := writeFeed(t)

	out, err := executeCommand("clusters", "--zoom", "13", "--feed", feed, "--format", "json")
	require.NoError(t, err)
	var clusters []models.Cluster
	require.NoError(t, json.Unmarshal([]byte(out), &clusters))
	require.Len(t, clusters, 1)
	assert.Equal(t, 2, clusters[0].Count)
	assert.Equal(t, "5152_-16039", clusters[0].ID)

	out, err = executeCommand("clusters", "--feed", feed)
	require.NoError(t, err)
	assert.Contains(t, out, "CLUSTER")
}

func TestMissingFeed(t *testing.T) {
	_, err := executeCommand("stats", "--feed", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "loading feed")
}

func TestClusters_Viewport(t *testing.T) {
	feed := writeFeed(t)

	// miami-dade opens at zoom 10, a 0.04 degree cell
	out, err := executeCommand("clusters", "--viewport", "miami-dade", "--feed", feed, "--format", "json")
	require.NoError(t, err)
	var clusters []models.Cluster
	require.NoError(t, json.Unmarshal([]byte(out), &clusters))
	require.Len(t, clusters, 1)
	assert.Equal(t, "644_-2005", clusters[0].ID)

	_, err = executeCommand("clusters", "--viewport", "atlantis", "--feed", feed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "miami-beach")
}
