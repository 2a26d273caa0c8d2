package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fhdsl/metricminer/internal/adapters/driven/storage/memory"
	"github.com/fhdsl/metricminer/internal/core/domain"
	"github.com/fhdsl/metricminer/internal/core/ports/driving"
)

func newTestSettings(t *testing.T) (*SettingsService, *memory.ConfigStore) {
	t.Helper()
	store := memory.NewConfigStore()
	s := NewSettingsService(store)
	s.lookupEnv = func(string) (string, bool) { return "", false }
	return s, store
}

func TestNewClientService(t *testing.T) {
	service := NewClientService(&mockLoader{}, &mockFactory{}, nil)

	require.NotNil(t, service)
}

func TestClientService_Connect(t *testing.T) {
	loader := &mockLoader{}
	factory := &mockFactory{}
	service := NewClientService(loader, factory, nil)

	client, err := service.Connect(context.Background(), driving.ConnectRequest{
		KeyFile: "./fixtures/valid-key.json",
		Scopes:  []string{domain.AnalyticsReadonlyScope},
	})

	require.NoError(t, err)
	info := client.Info()
	assert.Equal(t, "analyticsreporting", info.ServiceName)
	assert.Equal(t, "v4", info.Version)
	assert.Equal(t, []string{domain.AnalyticsReadonlyScope}, info.Scopes)

	require.Len(t, loader.calls, 1)
	assert.Equal(t, "./fixtures/valid-key.json", loader.calls[0].path)
	assert.Equal(t, 1, factory.calls)
	assert.Equal(t, domain.AnalyticsReportingV4, factory.lastSvc)
}

func TestClientService_Connect_DefaultsWithoutSettings(t *testing.T) {
	loader := &mockLoader{}
	service := NewClientService(loader, &mockFactory{}, nil)

	_, err := service.Connect(context.Background(), driving.ConnectRequest{KeyFile: "/k.json"})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScopes, loader.calls[0].scopes)
}

func TestClientService_Connect_UsesSettings(t *testing.T) {
	settings, store := newTestSettings(t)
	_ = store.Set(KeyKeyFile, "/stored/key.json")
	_ = store.Set(KeyScopes, []string{domain.AnalyticsScope})
	loader := &mockLoader{}
	service := NewClientService(loader, &mockFactory{}, settings)

	_, err := service.Connect(context.Background(), driving.ConnectRequest{})

	require.NoError(t, err)
	assert.Equal(t, "/stored/key.json", loader.calls[0].path)
	assert.Equal(t, []string{domain.AnalyticsScope}, loader.calls[0].scopes)
}

func TestClientService_Connect_RequestOverridesSettings(t *testing.T) {
	settings, store := newTestSettings(t)
	_ = store.Set(KeyKeyFile, "/stored/key.json")
	loader := &mockLoader{}
	factory := &mockFactory{}
	service := NewClientService(loader, factory, settings)

	_, err := service.Connect(context.Background(), driving.ConnectRequest{
		KeyFile: "/flag/key.json",
		Scopes:  []string{"scope-x"},
		Service: domain.ServiceDescriptor{Name: "analyticsreporting", Version: "v4"},
	})

	require.NoError(t, err)
	assert.Equal(t, "/flag/key.json", loader.calls[0].path)
	assert.Equal(t, []string{"scope-x"}, loader.calls[0].scopes)
}

func TestClientService_Connect_LoaderFailureSkipsFactory(t *testing.T) {
	for _, loadErr := range []error{domain.ErrFileNotFound, domain.ErrCredentialParse, domain.ErrScope} {
		t.Run(loadErr.Error(), func(t *testing.T) {
			factory := &mockFactory{}
			service := NewClientService(&mockLoader{err: loadErr}, factory, nil)

			client, err := service.Connect(context.Background(), driving.ConnectRequest{KeyFile: "/missing.json"})

			assert.Nil(t, client)
			assert.True(t, errors.Is(err, loadErr))
			assert.Zero(t, factory.calls, "factory must not run without credentials")
		})
	}
}

func TestClientService_Connect_FactoryError(t *testing.T) {
	service := NewClientService(&mockLoader{}, &mockFactory{err: domain.ErrServiceDiscovery}, nil)

	client, err := service.Connect(context.Background(), driving.ConnectRequest{KeyFile: "/k.json"})

	assert.Nil(t, client)
	assert.True(t, errors.Is(err, domain.ErrServiceDiscovery))
}

func TestClientService_Connect_SettingsError(t *testing.T) {
	settings, store := newTestSettings(t)
	_ = store.Set(KeyHTTPTimeout, "soon")
	loader := &mockLoader{}
	service := NewClientService(loader, &mockFactory{}, settings)

	_, err := service.Connect(context.Background(), driving.ConnectRequest{})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, loader.calls)
}

func TestClientService_Connect_IndependentClients(t *testing.T) {
	service := NewClientService(&mockLoader{}, &mockFactory{}, nil)
	req := driving.ConnectRequest{KeyFile: "/k.json"}

	first, err := service.Connect(context.Background(), req)
	require.NoError(t, err)
	second, err := service.Connect(context.Background(), req)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.Info().ID, second.Info().ID)
	assert.Equal(t, first.Info().Descriptor(), second.Info().Descriptor())
	assert.Equal(t, first.Info().Scopes, second.Info().Scopes)
}

func TestClientService_Check(t *testing.T) {
	fixed := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	service := NewClientService(&mockLoader{}, &mockFactory{}, nil)
	service.now = func() time.Time { return fixed }

	result, err := service.Check(context.Background(), driving.ConnectRequest{KeyFile: "/k.json"})

	require.NoError(t, err)
	assert.Equal(t, fixed, result.VerifiedAt)
	assert.Equal(t, "reporter@metricminer.iam.gserviceaccount.com", result.Client.Account)
}

func TestClientService_Check_Rejected(t *testing.T) {
	service := NewClientService(&mockLoader{}, &mockFactory{verifyErr: domain.ErrAuth}, nil)

	result, err := service.Check(context.Background(), driving.ConnectRequest{KeyFile: "/k.json"})

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrAuth))
	assert.Contains(t, err.Error(), "reporter@metricminer.iam.gserviceaccount.com")
}

func TestClientService_Check_ConnectFailure(t *testing.T) {
	service := NewClientService(&mockLoader{err: domain.ErrFileNotFound}, &mockFactory{}, nil)

	_, err := service.Check(context.Background(), driving.ConnectRequest{})

	assert.True(t, errors.Is(err, domain.ErrFileNotFound))
}
