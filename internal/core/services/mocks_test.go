package services

import (
	"context"
	"sync"

	"github.com/fhdsl/metricminer/internal/core/domain"
	"github.com/fhdsl/metricminer/internal/core/ports/driven"
)

// mockLoader records Load calls and returns canned results.
type mockLoader struct {
	mu     sync.Mutex
	calls  []loadCall
	result *domain.ScopedCredentials
	err    error
}

type loadCall struct {
	path   string
	scopes []string
}

func (m *mockLoader) Load(_ context.Context, path string, scopes []string) (*domain.ScopedCredentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, loadCall{path: path, scopes: scopes})
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.ScopedCredentials{
		Key:    domain.ServiceAccountKey{ClientEmail: "reporter@metricminer.iam.gserviceaccount.com"},
		Scopes: scopes,
		Path:   path,
	}, nil
}

// mockFactory records Build calls and returns mockClients.
type mockFactory struct {
	mu        sync.Mutex
	calls     int
	lastCreds *domain.ScopedCredentials
	lastSvc   domain.ServiceDescriptor
	err       error
	verifyErr error
}

func (m *mockFactory) Build(
	_ context.Context,
	creds *domain.ScopedCredentials,
	svc domain.ServiceDescriptor,
) (driven.APIClient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastCreds = creds
	m.lastSvc = svc
	if m.err != nil {
		return nil, m.err
	}
	return &mockClient{
		info: domain.ClientInfo{
			ID:          string(rune('a' + m.calls - 1)),
			ServiceName: svc.Name,
			Version:     svc.Version,
			Scopes:      append([]string(nil), creds.Scopes...),
			Account:     creds.Account(),
		},
		verifyErr: m.verifyErr,
	}, nil
}

type mockClient struct {
	info      domain.ClientInfo
	verifyErr error
	verified  int
}

func (c *mockClient) Info() domain.ClientInfo {
	return c.info
}

func (c *mockClient) Verify(context.Context) error {
	c.verified++
	return c.verifyErr
}
