package driven

import (
	"context"

	"github.com/fhdsl/metricminer/internal/core/domain"
)

// ServiceFactory constructs API clients from scoped credentials.
type ServiceFactory interface {
	// Build binds creds to the named service and version.
	// Returns domain.ErrServiceDiscovery when the service cannot be resolved
	// and domain.ErrAuth when credentials are missing or rejected.
	Build(ctx context.Context, creds *domain.ScopedCredentials, svc domain.ServiceDescriptor) (APIClient, error)
}

// APIClient is an authorized handle to a remote API.
// Each value is independent; callers own its lifetime.
type APIClient interface {
	// Info describes the client.
	Info() domain.ClientInfo

	// Verify obtains an access token to prove the credentials are accepted.
	// Returns domain.ErrAuth when the token endpoint rejects them.
	Verify(ctx context.Context) error
}
