package config

import "strings"

// Viewport is a named map starting position
type Viewport struct {
	Name      string    `json:"name"`
	Center    []float64 `json:"center"`
	ZoomLevel int       `json:"zoom_level"`
}

// DefaultViewport is where the map opens when no viewport is requested
var DefaultViewport = Viewport{
	Name:      "miami",
	Center:    []float64{25.7617, -80.1918},
	ZoomLevel: 11,
}

// SupportedViewports is a list of viewports offered to map clients
var SupportedViewports = []Viewport{
	DefaultViewport,
	{
		Name:      "miami-beach",
		Center:    []float64{25.7907, -80.1300},
		ZoomLevel: 13,
	},
	{
		Name:      "coral-gables",
		Center:    []float64{25.7215, -80.2684},
		ZoomLevel: 13,
	},
	{
		Name:      "miami-dade",
		Center:    []float64{25.6400, -80.4000},
		ZoomLevel: 10,
	},
}

// GetViewportNames returns the names of the supported viewports
func GetViewportNames() []string {
	names := make([]string, len(SupportedViewports))
	for i, v := range SupportedViewports {
		names[i] = v.Name
	}
	return names
}

// GetViewportByName returns a viewport by name, ignoring case
func GetViewportByName(name string) *Viewport {
	for _, v := range SupportedViewports {
		if strings.EqualFold(v.Name, name) {
			return &v
		}
	}
	return nil
}
