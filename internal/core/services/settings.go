package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fhdsl/metricminer/internal/core/domain"
	"github.com/fhdsl/metricminer/internal/core/ports/driven"
	"github.com/fhdsl/metricminer/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyKeyFile         = "credentials.key_file"
	KeyScopes          = "credentials.scopes"
	KeyServiceName     = "service.name"
	KeyServiceVersion  = "service.version"
	KeyServiceEndpoint = "service.endpoint"
	KeyDiscovery       = "service.discovery"
	KeyHTTPTimeout     = "http.timeout"
)

// Environment variables consulted by Get.
const (
	// EnvKeyFile overrides the stored key file.
	EnvKeyFile = "METRICMINER_KEY_FILE"
	// EnvScopes overrides the stored scopes (comma separated).
	EnvScopes = "METRICMINER_SCOPES"
	// EnvGoogleCredentials is used only when no key file is stored.
	EnvGoogleCredentials = "GOOGLE_APPLICATION_CREDENTIALS"
)

var settingKeys = []string{
	KeyKeyFile,
	KeyScopes,
	KeyServiceName,
	KeyServiceVersion,
	KeyServiceEndpoint,
	KeyDiscovery,
	KeyHTTPTimeout,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// Get retrieves the effective settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if _, ok := s.configStore.Get(KeyScopes); ok {
		settings.Scopes = domain.NormaliseScopes(s.configStore.GetStringSlice(KeyScopes))
	}
	settings.KeyFile = s.configStore.GetString(KeyKeyFile)
	settings.Service.Name = s.getString(KeyServiceName, settings.Service.Name)
	settings.Service.Version = s.getString(KeyServiceVersion, settings.Service.Version)
	settings.Endpoint = s.configStore.GetString(KeyServiceEndpoint)
	if _, ok := s.configStore.Get(KeyDiscovery); ok {
		settings.Discovery = s.configStore.GetBool(KeyDiscovery)
	}
	if raw := s.configStore.GetString(KeyHTTPTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, KeyHTTPTimeout, err)
		}
		settings.HTTPTimeout = d
	}

	if v, ok := s.lookupEnv(EnvKeyFile); ok && strings.TrimSpace(v) != "" {
		settings.KeyFile = v
	} else if settings.KeyFile == "" {
		if v, ok := s.lookupEnv(EnvGoogleCredentials); ok && strings.TrimSpace(v) != "" {
			settings.KeyFile = v
		}
	}
	if v, ok := s.lookupEnv(EnvScopes); ok && strings.TrimSpace(v) != "" {
		settings.Scopes = domain.ParseScopes(v)
	}

	return settings, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	if settings.HTTPTimeout < 0 {
		return fmt.Errorf("%w: negative %s", domain.ErrInvalidInput, KeyHTTPTimeout)
	}

	values := []struct {
		key string
		val any
	}{
		{KeyKeyFile, settings.KeyFile},
		{KeyScopes, domain.NormaliseScopes(settings.Scopes)},
		{KeyServiceName, settings.Service.Name},
		{KeyServiceVersion, settings.Service.Version},
		{KeyServiceEndpoint, settings.Endpoint},
		{KeyDiscovery, settings.Discovery},
		{KeyHTTPTimeout, settings.HTTPTimeout.String()},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.val); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single setting from its string form.
// An empty value removes the key so the default applies again.
func (s *SettingsService) Set(key, value string) error {
	if !isSettingKey(key) {
		return fmt.Errorf("%w: unknown setting %q (valid: %s)",
			domain.ErrInvalidInput, key, strings.Join(settingKeys, ", "))
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return s.configStore.Delete(key)
	}

	var typed any = value
	switch key {
	case KeyScopes:
		typed = domain.ParseScopes(value)
	case KeyDiscovery:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		typed = b
	case KeyHTTPTimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return fmt.Errorf("%w: %s must be a duration such as 30s", domain.ErrInvalidInput, key)
		}
		typed = d.String()
	}

	return s.configStore.Set(key, typed)
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return *domain.DefaultSettings()
}

// Path returns where settings are stored.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func isSettingKey(key string) bool {
	for _, k := range settingKeys {
		if k == key {
			return true
		}
	}
	return false
}
