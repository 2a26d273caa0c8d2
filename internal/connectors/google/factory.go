package google

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	analyticsreporting "google.golang.org/api/analyticsreporting/v4"
	"google.golang.org/api/option"

	"github.com/fhdsl/metricminer/internal/core/domain"
	"github.com/fhdsl/metricminer/internal/core/ports/driven"
	"github.com/fhdsl/metricminer/internal/logger"
)

// DefaultUserAgent is sent with every API request.
const DefaultUserAgent = "metricminer/dev"

// Ensure ServiceFactory implements the interface.
var _ driven.ServiceFactory = (*ServiceFactory)(nil)

// SupportedServices lists the APIs the factory can bind.
var SupportedServices = []domain.ServiceDescriptor{
	domain.AnalyticsReportingV4,
}

// IsSupported returns true if the factory can bind d.
func IsSupported(d domain.ServiceDescriptor) bool {
	for _, s := range SupportedServices {
		if s == d {
			return true
		}
	}
	return false
}

// FactoryOption configures a ServiceFactory.
type FactoryOption func(*ServiceFactory)

// WithDiscovery resolves every service against the Discovery directory
// before binding it.
func WithDiscovery(r *DiscoveryResolver) FactoryOption {
	return func(f *ServiceFactory) {
		f.resolver = r
	}
}

// WithEndpoint overrides the API base URL.
func WithEndpoint(endpoint string) FactoryOption {
	return func(f *ServiceFactory) {
		f.endpoint = endpoint
	}
}

// WithHTTPTimeout bounds each API request. Zero disables the timeout.
func WithHTTPTimeout(d time.Duration) FactoryOption {
	return func(f *ServiceFactory) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent sent with API requests.
func WithUserAgent(ua string) FactoryOption {
	return func(f *ServiceFactory) {
		f.userAgent = ua
	}
}

// ServiceFactory binds scoped credentials to Google APIs.
// It holds configuration only; every Build returns an independent client.
type ServiceFactory struct {
	resolver  *DiscoveryResolver
	endpoint  string
	timeout   time.Duration
	userAgent string
	now       func() time.Time
}

// NewServiceFactory creates a ServiceFactory.
func NewServiceFactory(opts ...FactoryOption) *ServiceFactory {
	f := &ServiceFactory{
		timeout:   domain.DefaultHTTPTimeout,
		userAgent: DefaultUserAgent,
		now:       time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Build binds creds to svc.
func (f *ServiceFactory) Build(
	ctx context.Context,
	creds *domain.ScopedCredentials,
	svc domain.ServiceDescriptor,
) (driven.APIClient, error) {
	return f.NewReportingClient(ctx, creds, svc)
}

// NewReportingClient is Build with a concrete return type.
func (f *ServiceFactory) NewReportingClient(
	ctx context.Context,
	creds *domain.ScopedCredentials,
	svc domain.ServiceDescriptor,
) (*ReportingClient, error) {
	if creds == nil || len(creds.KeyJSON) == 0 {
		return nil, fmt.Errorf("build %s: %w: no credentials", svc.ID(), domain.ErrAuth)
	}
	if len(creds.Scopes) == 0 {
		return nil, fmt.Errorf("build %s: %w", svc.ID(), domain.ErrScope)
	}
	if err := svc.Validate(); err != nil {
		return nil, fmt.Errorf("build: %w: %w", domain.ErrServiceDiscovery, err)
	}
	if !IsSupported(svc) {
		return nil, fmt.Errorf("build: %w: unknown service %s", domain.ErrServiceDiscovery, svc.ID())
	}

	if f.resolver != nil {
		if _, err := f.resolver.Resolve(ctx, svc); err != nil {
			return nil, fmt.Errorf("build: %w", err)
		}
	}

	jwtCfg, err := googleoauth.JWTConfigFromJSON(creds.KeyJSON, creds.Scopes...)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w: %w", svc.ID(), domain.ErrCredentialParse, err)
	}

	if !creds.HasScope(domain.AnalyticsReadonlyScope) && !creds.HasScope(domain.AnalyticsScope) {
		logger.Warn("None of the scopes %v grant Analytics access; requests will be refused", creds.Scopes)
	}

	// Token exchanges go through tokenClient so the timeout bounds them too;
	// without it oauth2 falls back to http.DefaultClient.
	account := creds.Account()
	tokenClient := &http.Client{Timeout: f.timeout}
	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, tokenClient)
	tokens := oauth2.ReuseTokenSource(nil, NewTokenSource(jwtCfg.TokenSource(tokenCtx), account))

	httpClient := &http.Client{
		Timeout:   f.timeout,
		Transport: cancelFreeTransport{&oauth2.Transport{Source: tokens}},
	}

	opts := []option.ClientOption{
		option.WithHTTPClient(httpClient),
		option.WithUserAgent(f.userAgent),
	}
	if f.endpoint != "" {
		opts = append(opts, option.WithEndpoint(f.endpoint))
	}

	reporting, err := analyticsreporting.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w: %w", svc.ID(), domain.ErrServiceDiscovery, err)
	}

	info := domain.ClientInfo{
		ID:          uuid.New().String(),
		ServiceName: svc.Name,
		Version:     svc.Version,
		Scopes:      append([]string(nil), creds.Scopes...),
		Account:     account,
		ProjectID:   creds.Key.ProjectID,
		Endpoint:    reporting.BasePath,
		CreatedAt:   f.now(),
	}

	logger.Debug("Built %s client %s for %s", svc.ID(), info.ID, account)

	return &ReportingClient{
		info:        info,
		service:     reporting,
		tokenClient: tokenClient,
		jwt:         jwtCfg,
	}, nil
}

// cancelFreeTransport exposes only RoundTrip. http.Client then enforces
// its Timeout through the request context instead of calling
// oauth2.Transport's deprecated CancelRequest.
type cancelFreeTransport struct {
	http.RoundTripper
}

// ReportingClient is an authorized Analytics Reporting v4 client.
type ReportingClient struct {
	info        domain.ClientInfo
	service     *analyticsreporting.Service
	tokenClient *http.Client
	jwt         *jwt.Config
}

// Ensure ReportingClient implements the interface.
var _ driven.APIClient = (*ReportingClient)(nil)

// Info describes the client.
func (c *ReportingClient) Info() domain.ClientInfo {
	info := c.info
	info.Scopes = append([]string(nil), c.info.Scopes...)
	return info
}

// Reporting returns the Analytics Reporting service handle.
func (c *ReportingClient) Reporting() *analyticsreporting.Service {
	return c.service
}

// Verify fetches a fresh access token using ctx. The factory's HTTP timeout
// bounds the exchange.
func (c *ReportingClient) Verify(ctx context.Context) error {
	logger.Debug("Verifying credentials for %s against %s", c.info.Account, c.jwt.TokenURL)

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.tokenClient)
	if _, err := c.jwt.TokenSource(ctx).Token(); err != nil {
		return classifyTokenError(c.info.Account, err)
	}
	return nil
}
