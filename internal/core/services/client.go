package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fhdsl/metricminer/internal/core/domain"
	"github.com/fhdsl/metricminer/internal/core/ports/driven"
	"github.com/fhdsl/metricminer/internal/core/ports/driving"
	"github.com/fhdsl/metricminer/internal/logger"
)

// Ensure ClientService implements the interface.
var _ driving.ClientService = (*ClientService)(nil)

// ClientService loads credentials and hands them to a ServiceFactory.
type ClientService struct {
	loader   driven.CredentialLoader
	factory  driven.ServiceFactory
	settings driving.SettingsService
	now      func() time.Time
}

// NewClientService creates a new client service.
// settings may be nil, in which case requests must be complete.
func NewClientService(
	loader driven.CredentialLoader,
	factory driven.ServiceFactory,
	settings driving.SettingsService,
) *ClientService {
	return &ClientService{
		loader:   loader,
		factory:  factory,
		settings: settings,
		now:      time.Now,
	}
}

// Connect loads credentials and constructs a client.
func (s *ClientService) Connect(ctx context.Context, req driving.ConnectRequest) (driven.APIClient, error) {
	resolved, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	logger.Section("Credentials")
	creds, err := s.loader.Load(ctx, resolved.KeyFile, resolved.Scopes)
	if err != nil {
		return nil, err
	}

	logger.Section("Client")
	client, err := s.factory.Build(ctx, creds, resolved.Service)
	if err != nil {
		return nil, err
	}

	info := client.Info()
	logger.Info("Connected to %s as %s", info.Descriptor().ID(), info.Account)
	return client, nil
}

// Check connects and then verifies the credentials against the token endpoint.
func (s *ClientService) Check(ctx context.Context, req driving.ConnectRequest) (*driving.CheckResult, error) {
	client, err := s.Connect(ctx, req)
	if err != nil {
		return nil, err
	}

	logger.Section("Verify")
	if err := client.Verify(ctx); err != nil {
		return nil, fmt.Errorf("verify %s: %w", client.Info().Account, err)
	}

	return &driving.CheckResult{
		Client:     client.Info(),
		VerifiedAt: s.now(),
	}, nil
}

// resolve fills request gaps from settings, then defaults.
func (s *ClientService) resolve(req driving.ConnectRequest) (driving.ConnectRequest, error) {
	settings := domain.DefaultSettings()
	if s.settings != nil {
		stored, err := s.settings.Get()
		if err != nil {
			return req, fmt.Errorf("read settings: %w", err)
		}
		settings = stored
	}

	if req.KeyFile == "" {
		req.KeyFile = settings.KeyFile
	}
	if len(req.Scopes) == 0 {
		req.Scopes = settings.Scopes
	}
	if req.Service == (domain.ServiceDescriptor{}) {
		req.Service = settings.Service
	}

	logger.Debug("Resolved key file %q, scopes %v, service %s", req.KeyFile, req.Scopes, req.Service.ID())
	return req, nil
}
