package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Buyer is the buyer identity served by the buyer view.
	Buyer string `mapstructure:"buyer" default:"buyer1"`
	// Views selects how pages are rendered (html, json).
	Views string `mapstructure:"views" default:"html"`
}

const (
	ViewsHTML = "html"
	ViewsJSON = "json"
)

// IsValidViews checks if the configured view mode is valid.
func (c Config) IsValidViews() bool {
	switch c.Views {
	case ViewsHTML, ViewsJSON:
		return true
	default:
		return false
	}
}
