// Command metricminer builds authorized Google Analytics Reporting clients
// from service-account keys.
package main

import (
	"context"
	"fmt"
	"os"

	configfile "github.com/fhdsl/metricminer/internal/adapters/driven/config/file"
	credentialsfile "github.com/fhdsl/metricminer/internal/adapters/driven/credentials/file"
	"github.com/fhdsl/metricminer/internal/adapters/driving/cli"
	"github.com/fhdsl/metricminer/internal/connectors/google"
	"github.com/fhdsl/metricminer/internal/core/ports/driving"
	"github.com/fhdsl/metricminer/internal/core/services"
)

// Set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap wires adapters to services once flags are known.
func bootstrap(configDir string) (driving.ClientService, driving.SettingsService, error) {
	if configDir == "" {
		configDir = configfile.DefaultConfigDir()
	}

	store, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open config: %w", err)
	}
	settingsService := services.NewSettingsService(store)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read settings: %w", err)
	}

	opts := []google.FactoryOption{
		google.WithEndpoint(settings.Endpoint),
		google.WithHTTPTimeout(settings.HTTPTimeout),
		google.WithUserAgent("metricminer/" + version),
	}
	if settings.Discovery {
		resolver, err := google.NewDiscoveryResolver(context.Background())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create discovery client: %w", err)
		}
		opts = append(opts, google.WithDiscovery(resolver))
	}

	clientService := services.NewClientService(
		credentialsfile.NewLoader(),
		google.NewServiceFactory(opts...),
		settingsService,
	)
	return clientService, settingsService, nil
}
