package cli

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhdsl/metricminer/internal/adapters/driven/credentials/file"
	"github.com/fhdsl/metricminer/internal/adapters/driven/storage/memory"
	"github.com/fhdsl/metricminer/internal/connectors/google"
	"github.com/fhdsl/metricminer/internal/core/services"
)

// resetFlags restores flag variables between command executions.
func resetFlags() {
	verboseFlag = false
	configFlag = ""
	keyFileFlag = ""
	scopesFlag = ""
	clientServiceFlag = ""
	clientVersionFlag = ""
	clientJSONFlag = false
	settingsJSONFlag = false
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// useRealServices wires the real loader and factory over an in-memory store.
func useRealServices(t *testing.T) *services.SettingsService {
	t.Helper()
	for _, env := range []string{services.EnvKeyFile, services.EnvScopes, services.EnvGoogleCredentials} {
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}

	settings := services.NewSettingsService(memory.NewConfigStore())
	client := services.NewClientService(file.NewLoader(), google.NewServiceFactory(), settings)
	SetServices(client, settings)
	t.Cleanup(func() { SetServices(nil, nil) })
	return settings
}

// writeSigningKey writes a service-account key with a real RSA key whose
// token_uri is tokenURL.
func writeSigningKey(t *testing.T, tokenURL string) string {
	t.Helper()
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(rsaKey)
	require.NoError(t, err)

	doc := map[string]string{
		"type":           "service_account",
		"project_id":     "metricminer",
		"private_key_id": "cli-test",
		"private_key":    string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})),
		"client_email":   "reporter@metricminer.iam.gserviceaccount.com",
		"token_uri":      tokenURL,
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// newTokenEndpoint serves OAuth2 token responses with the given status.
func newTokenEndpoint(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"error":"invalid_grant"}`)
			return
		}
		fmt.Fprint(w, `{"access_token":"ya29.cli","token_type":"Bearer","expires_in":3600}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}
