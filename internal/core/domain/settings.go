package domain

import "time"

// DefaultHTTPTimeout bounds each request made by a constructed client.
const DefaultHTTPTimeout = 30 * time.Second

// Settings holds where the key lives and which API to bind.
type Settings struct {
	// KeyFile is the path to the service-account JSON key. No default.
	KeyFile string `json:"key_file"`
	// Scopes are the OAuth scopes requested for the client.
	Scopes []string `json:"scopes"`
	// Service is the API to bind.
	Service ServiceDescriptor `json:"service"`
	// Endpoint overrides the API base URL. Empty uses the library default.
	Endpoint string `json:"endpoint,omitempty"`
	// Discovery enables remote resolution of the service before binding.
	Discovery bool `json:"discovery"`
	// HTTPTimeout bounds each request. Zero disables the timeout.
	HTTPTimeout time.Duration `json:"http_timeout"`
}

// DefaultSettings returns settings for Analytics Reporting v4, read-only.
func DefaultSettings() *Settings {
	return &Settings{
		Scopes:      append([]string(nil), DefaultScopes...),
		Service:     AnalyticsReportingV4,
		Discovery:   false,
		HTTPTimeout: DefaultHTTPTimeout,
	}
}
