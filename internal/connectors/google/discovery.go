package google

import (
	"context"
	"fmt"

	discovery "google.golang.org/api/discovery/v1"
	"google.golang.org/api/option"

	"github.com/fhdsl/metricminer/internal/core/domain"
	"github.com/fhdsl/metricminer/internal/logger"
)

// DiscoveryResolver looks services up in the Google API Discovery directory.
// The directory is public, so requests are unauthenticated.
type DiscoveryResolver struct {
	svc *discovery.Service
}

// NewDiscoveryResolver creates a resolver. opts are appended after
// option.WithoutAuthentication, so tests can point it at another endpoint.
func NewDiscoveryResolver(ctx context.Context, opts ...option.ClientOption) (*DiscoveryResolver, error) {
	all := append([]option.ClientOption{option.WithoutAuthentication()}, opts...)
	svc, err := discovery.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("create discovery service: %w", err)
	}
	return &DiscoveryResolver{svc: svc}, nil
}

// Resolve fetches the discovery document for d.
// Any failure, including a document for a different name or version,
// is reported as domain.ErrServiceDiscovery.
func (r *DiscoveryResolver) Resolve(ctx context.Context, d domain.ServiceDescriptor) (*discovery.RestDescription, error) {
	logger.Debug("Fetching discovery document for %s", d.ID())

	doc, err := r.svc.Apis.GetRest(d.Name, d.Version).Context(ctx).Do()
	if err != nil {
		err = WrapError(err)
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s is not listed in the directory: %w", domain.ErrServiceDiscovery, d.ID(), err)
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrServiceDiscovery, d.ID(), err)
	}

	if doc.Name != d.Name || doc.Version != d.Version {
		return nil, fmt.Errorf("%w: requested %s, directory returned %s:%s",
			domain.ErrServiceDiscovery, d.ID(), doc.Name, doc.Version)
	}

	logger.Debug("Resolved %s at %s%s", d.ID(), doc.RootUrl, doc.ServicePath)
	return doc, nil
}
