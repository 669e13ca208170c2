package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"propdash/server/config"
	"propdash/server/internal/dashboard"
	"propdash/server/internal/format"
	"propdash/server/internal/geometry"
	"propdash/server/internal/listings"
	"propdash/server/internal/models"
)

// Refresher reloads the feed on demand and reports the last attempt.
type Refresher interface {
	RefreshNow(ctx context.Context) (int, error)
	Status() (time.Time, error)
}

type Handler struct {
	store     *dashboard.Store
	refresher Refresher
	logger    *logrus.Logger
}

type PropertyQuery struct {
	Search  string `form:"q"`
	Sort    string `form:"sort"`
	Columns int    `form:"columns"`
}

type ClusterQuery struct {
	Zoom     int    `form:"zoom"`
	Viewport string `form:"viewport"`
	BBox     string `form:"bbox"`
	Format   string `form:"format"`
}

type PropertiesResponse struct {
	Total      int                 `json:"total"`
	Matched    int                 `json:"matched"`
	Properties []models.Property   `json:"properties"`
	Rows       [][]models.Property `json:"rows,omitempty"`
}

type StatusResponse struct {
	Properties  int        `json:"properties"`
	Version     uint64     `json:"version"`
	LastRefresh *time.Time `json:"last_refresh"`
	LastError   string     `json:"last_error,omitempty"`
}

type StatsResponse struct {
	models.DashboardStats
	FormattedAvgPrice    string `json:"formatted_avg_price"`
	FormattedMedianPrice string `json:"formatted_median_price"`
	FormattedTotalValue  string `json:"formatted_total_value"`
}

func NewHandler(store *dashboard.Store, refresher Refresher, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		store:     store,
		refresher: refresher,
		logger:    logger,
	}
}

func (h *Handler) GetProperties(c *gin.Context) {
	var query PropertyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.WithError(err).Warn("Failed to parse property query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	order, err := listings.ParseSortOrder(query.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.store.Search(listings.Query{Search: query.Search, Sort: order})
	properties := sanitizeProperties(result.Properties)

	response := PropertiesResponse{
		Total:      result.Total,
		Matched:    len(properties),
		Properties: properties,
	}
	if query.Columns > 0 {
		response.Rows = listings.ChunkIntoRows(properties, query.Columns)
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetProperty(c *gin.Context) {
	property, err := h.store.Property(c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, sanitizeProperty(property))
}

func (h *Handler) GetOwner(c *gin.Context) {
	owner, err := h.store.Owner(c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, owner)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := h.store.Stats()
	c.JSON(http.StatusOK, StatsResponse{
		DashboardStats:       stats,
		FormattedAvgPrice:    format.FormatPrice(stats.AvgPrice),
		FormattedMedianPrice: format.FormatPrice(stats.MedianPrice),
		FormattedTotalValue:  format.FormatPrice(stats.TotalValue),
	})
}

func (h *Handler) GetClusters(c *gin.Context) {
	var query ClusterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.WithError(err).Warn("Failed to parse cluster query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}
	viewport := &config.DefaultViewport
	if query.Viewport != "" {
		viewport = config.GetViewportByName(query.Viewport)
	}
	if viewport == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Unknown viewport",
			"viewports": config.GetViewportNames(),
		})
		return
	}
	if query.Zoom == 0 {
		query.Zoom = viewport.ZoomLevel
	}

	var bound *orb.Bound
	if query.BBox != "" {
		b, err := geometry.ParseBound(query.BBox)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		bound = &b
	}

	clusters := h.store.Clusters(query.Zoom, bound)

	if strings.EqualFold(query.Format, "geojson") {
		c.JSON(http.StatusOK, geometry.ClustersToFeatureCollection(clusters))
		return
	}

	for i := range clusters {
		clusters[i].Properties = sanitizeProperties(clusters[i].Properties)
	}
	c.JSON(http.StatusOK, gin.H{
		"zoom":     query.Zoom,
		"clusters": clusters,
	})
}

func (h *Handler) GetViewports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default":   config.DefaultViewport.Name,
		"viewports": config.SupportedViewports,
	})
}

func (h *Handler) GetStatus(c *gin.Context) {
	response := StatusResponse{
		Properties: len(h.store.Properties()),
		Version:    h.store.Version(),
	}
	if h.refresher != nil {
		last, err := h.refresher.Status()
		if !last.IsZero() {
			response.LastRefresh = &last
		}
		if err != nil {
			response.LastError = err.Error()
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) Refresh(c *gin.Context) {
	if h.refresher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Feed refresh is not configured"})
		return
	}

	count, err := h.refresher.RefreshNow(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to refresh feed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to refresh feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"properties": count,
	})
}

func (h *Handler) respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, dashboard.ErrPropertyNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	h.logger.WithError(err).Error("Failed to get property")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property"})
}

// sanitizeProperty blanks links that are not absolute http(s) URLs and
// drops such photos.
func sanitizeProperty(p models.Property) models.Property {
	if !format.IsSafeURL(p.URL) {
		p.URL = ""
	}
	if !format.IsSafeURL(p.PrimaryPhoto) {
		p.PrimaryPhoto = ""
	}
	photos := make([]string, 0, len(p.Photos))
	for _, photo := range p.Photos {
		if format.IsSafeURL(photo) {
			photos = append(photos, photo)
		}
	}
	p.Photos = photos
	return p
}

func sanitizeProperties(properties []models.Property) []models.Property {
	sanitized := make([]models.Property, len(properties))
	for i, p := range properties {
		sanitized[i] = sanitizeProperty(p)
	}
	return sanitized
}
