package google

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhdsl/metricminer/internal/core/domain"
)

const testAccount = "reporter@metricminer.iam.gserviceaccount.com"

var (
	keyOnce sync.Once
	keyPEM  string
)

// testPrivateKey returns a PEM-encoded RSA key generated once per test run.
func testPrivateKey(t *testing.T) string {
	t.Helper()
	keyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		der, err := x509.MarshalPKCS8PrivateKey(key)
		if err != nil {
			panic(err)
		}
		keyPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
	})
	return keyPEM
}

// newCredentials builds scoped credentials whose token_uri is tokenURL.
func newCredentials(t *testing.T, tokenURL string, scopes ...string) *domain.ScopedCredentials {
	t.Helper()
	if len(scopes) == 0 {
		scopes = []string{domain.AnalyticsReadonlyScope}
	}
	key := domain.ServiceAccountKey{
		Type:         domain.ServiceAccountKeyType,
		ProjectID:    "metricminer",
		PrivateKeyID: "test-key",
		PrivateKey:   testPrivateKey(t),
		ClientEmail:  testAccount,
		TokenURI:     tokenURL,
	}
	data, err := json.Marshal(key)
	require.NoError(t, err)
	return &domain.ScopedCredentials{
		Key:     key,
		KeyJSON: data,
		Scopes:  scopes,
		Path:    "memory://test-key.json",
	}
}

// tokenServer is a fake OAuth2 token endpoint.
type tokenServer struct {
	*httptest.Server
	requests atomic.Int32
}

func newTokenServer(t *testing.T, status int) *tokenServer {
	t.Helper()
	ts := &tokenServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.requests.Add(1)
		if err := r.ParseForm(); err != nil || r.Form.Get("assertion") == "" {
			http.Error(w, `{"error":"invalid_request"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"error":"invalid_grant","error_description":"Invalid JWT Signature."}`)
			return
		}
		fmt.Fprint(w, `{"access_token":"ya29.test-token","token_type":"Bearer","expires_in":3600}`)
	}))
	t.Cleanup(ts.Close)
	return ts
}
