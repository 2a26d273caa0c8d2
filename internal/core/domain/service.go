package domain

import (
	"fmt"
	"time"
)

// OAuth scopes understood by the Analytics Reporting API.
const (
	// AnalyticsReadonlyScope grants read-only access to Analytics data.
	AnalyticsReadonlyScope = "https://www.googleapis.com/auth/analytics.readonly"
	// AnalyticsScope grants read-write access to Analytics data.
	AnalyticsScope = "https://www.googleapis.com/auth/analytics"
)

// DefaultScopes are requested when no scopes are configured.
var DefaultScopes = []string{AnalyticsReadonlyScope}

// ServiceDescriptor names a versioned remote API.
type ServiceDescriptor struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// AnalyticsReportingV4 is the Google Analytics Reporting API, version 4.
var AnalyticsReportingV4 = ServiceDescriptor{Name: "analyticsreporting", Version: "v4"}

// ID returns the discovery identifier, e.g. "analyticsreporting:v4".
func (d ServiceDescriptor) ID() string {
	return d.Name + ":" + d.Version
}

// String returns the descriptor in "name/version" form.
func (d ServiceDescriptor) String() string {
	return d.Name + "/" + d.Version
}

// Validate checks both parts are set.
func (d ServiceDescriptor) Validate() error {
	if d.Name == "" || d.Version == "" {
		return fmt.Errorf("%w: service name and version are required (got %q)", ErrInvalidInput, d.ID())
	}
	return nil
}

// ClientInfo describes a constructed API client.
type ClientInfo struct {
	// ID is unique per constructed client instance.
	ID string `json:"id"`
	// ServiceName is the bound API name, e.g. "analyticsreporting".
	ServiceName string `json:"service_name"`
	// Version is the bound API version, e.g. "v4".
	Version string `json:"version"`
	// Scopes are the OAuth scopes the client's tokens carry.
	Scopes []string `json:"scopes"`
	// Account is the service account email.
	Account string `json:"account"`
	// ProjectID is the project owning the service account, if known.
	ProjectID string `json:"project_id,omitempty"`
	// Endpoint is the API base URL the client talks to.
	Endpoint string `json:"endpoint"`
	// CreatedAt is when the client was constructed.
	CreatedAt time.Time `json:"created_at"`
}

// Descriptor returns the service the client is bound to.
func (i ClientInfo) Descriptor() ServiceDescriptor {
	return ServiceDescriptor{Name: i.ServiceName, Version: i.Version}
}
