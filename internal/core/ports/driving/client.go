package driving

import (
	"context"
	"time"

	"github.com/fhdsl/metricminer/internal/core/domain"
	"github.com/fhdsl/metricminer/internal/core/ports/driven"
)

// ConnectRequest overrides stored settings for a single connection.
// Zero values fall back to the configured settings.
type ConnectRequest struct {
	// KeyFile is the path to the service-account key.
	KeyFile string
	// Scopes are the OAuth scopes to request.
	Scopes []string
	// Service is the API to bind.
	Service domain.ServiceDescriptor
}

// CheckResult reports a successful credential check.
type CheckResult struct {
	Client     domain.ClientInfo `json:"client"`
	VerifiedAt time.Time         `json:"verified_at"`
}

// ClientService builds authorized API clients.
type ClientService interface {
	// Connect loads credentials and constructs a client.
	// The factory is never invoked if loading fails.
	Connect(ctx context.Context, req ConnectRequest) (driven.APIClient, error)

	// Check connects and then verifies the credentials against the token endpoint.
	Check(ctx context.Context, req ConnectRequest) (*CheckResult, error)
}
