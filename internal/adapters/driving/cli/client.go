package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fhdsl/metricminer/internal/core/domain"
	"github.com/fhdsl/metricminer/internal/core/ports/driving"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Build an authorized Analytics Reporting client and describe it",
	Long: `Load the service-account key, bind it to the configured scopes and
construct an Analytics Reporting API client.

No token is requested; use 'metricminer client check' to confirm Google
accepts the key.`,
	Args: cobra.NoArgs,
	RunE: runClient,
}

var clientCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Build a client and verify the key against the token endpoint",
	Args:  cobra.NoArgs,
	RunE:  runClientCheck,
}

// Flags for client commands.
var (
	clientServiceFlag string
	clientVersionFlag string
	clientJSONFlag    bool
)

func init() {
	for _, c := range []*cobra.Command{clientCmd, clientCheckCmd} {
		c.Flags().StringVar(&clientServiceFlag, "service", "", "API name (default analyticsreporting)")
		c.Flags().StringVar(&clientVersionFlag, "api-version", "", "API version (default v4)")
		c.Flags().BoolVar(&clientJSONFlag, "json", false, "Print the result as JSON")
	}

	clientCmd.AddCommand(clientCheckCmd)
	rootCmd.AddCommand(clientCmd)
}

// connectRequest builds a request from the global and client flags.
// The service descriptor is only set when both parts are known.
func connectRequest() (driving.ConnectRequest, error) {
	req := driving.ConnectRequest{
		KeyFile: keyFileFlag,
		Scopes:  domain.ParseScopes(scopesFlag),
	}

	if clientServiceFlag == "" && clientVersionFlag == "" {
		return req, nil
	}

	svc := domain.AnalyticsReportingV4
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return req, err
		}
		svc = settings.Service
	}
	if clientServiceFlag != "" {
		svc.Name = clientServiceFlag
	}
	if clientVersionFlag != "" {
		svc.Version = clientVersionFlag
	}
	req.Service = svc
	return req, nil
}

func runClient(cmd *cobra.Command, _ []string) error {
	if clientService == nil {
		return errors.New("client service not configured")
	}

	req, err := connectRequest()
	if err != nil {
		return err
	}

	client, err := clientService.Connect(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to build client: %w", err)
	}

	out := cmd.OutOrStdout()
	if clientJSONFlag {
		return writeJSON(out, client.Info())
	}
	renderClientInfo(out, stylesFor(out), client.Info())
	return nil
}

func runClientCheck(cmd *cobra.Command, _ []string) error {
	if clientService == nil {
		return errors.New("client service not configured")
	}

	req, err := connectRequest()
	if err != nil {
		return err
	}

	result, err := clientService.Check(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("credential check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if clientJSONFlag {
		return writeJSON(out, result)
	}
	st := stylesFor(out)
	renderClientInfo(out, st, result.Client)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s\n", st.success.Render("✓ Credentials accepted"), st.muted.Render(formatTime(result.VerifiedAt)))
	return nil
}
