// Package cli implements the metricminer command line.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/fhdsl/metricminer/internal/core/ports/driving"
	"github.com/fhdsl/metricminer/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services used by commands. Set via SetServices or built by the bootstrap
// function on first use.
var (
	clientService   driving.ClientService
	settingsService driving.SettingsService
)

// Bootstrap builds services once flags are parsed. configDir is the value of
// --config and may be empty.
type Bootstrap func(configDir string) (driving.ClientService, driving.SettingsService, error)

var bootstrap Bootstrap

// Global flags.
var (
	verboseFlag bool
	configFlag  string
	keyFileFlag string
	scopesFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "metricminer",
	Short: "Authorized Google Analytics Reporting API clients from service-account keys",
	Long: `metricminer loads a Google service-account JSON key, binds it to OAuth
scopes and constructs an authorized Analytics Reporting API v4 client.

The key file is taken from --key-file, then METRICMINER_KEY_FILE, then the
credentials.key_file setting, then GOOGLE_APPLICATION_CREDENTIALS.

Examples:
  # Build a client and describe it
  metricminer client --key-file .secrets/metricminer.json

  # Confirm Google accepts the key
  metricminer client check

  # Remember the key location
  metricminer settings set credentials.key_file ~/.secrets/metricminer.json`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config directory (default $XDG_CONFIG_HOME/metricminer)")
	rootCmd.PersistentFlags().StringVar(&keyFileFlag, "key-file", "", "Path to the service-account JSON key")
	rootCmd.PersistentFlags().StringVar(&scopesFlag, "scopes", "", "OAuth scopes (comma-separated)")
}

func preRun(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if clientService != nil && settingsService != nil {
		return nil
	}
	if bootstrap == nil {
		return errors.New("services not configured")
	}

	client, settings, err := bootstrap(configFlag)
	if err != nil {
		return err
	}
	SetServices(client, settings)
	return nil
}

// SetServices injects the services used by commands.
func SetServices(client driving.ClientService, settings driving.SettingsService) {
	clientService = client
	settingsService = settings
}

// SetBootstrap registers the function that builds services after flag parsing.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
