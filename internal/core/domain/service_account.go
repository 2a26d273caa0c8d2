package domain

import (
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net/url"
	"strings"
)

// ServiceAccountKeyType is the only document type accepted as a key.
const ServiceAccountKeyType = "service_account"

// ServiceAccountKey is a service-account JSON key as issued by the cloud console.
// The key is provisioned out-of-band; metricminer only ever reads it.
type ServiceAccountKey struct {
	// Type is the credential document type. Always "service_account" for keys.
	Type string `json:"type"`
	// ProjectID is the project that owns the service account.
	ProjectID string `json:"project_id,omitempty"`
	// PrivateKeyID identifies the key within the service account.
	PrivateKeyID string `json:"private_key_id,omitempty"`
	// PrivateKey is the PEM-encoded signing key.
	PrivateKey string `json:"private_key"`
	// ClientEmail is the service account identity (the JWT issuer).
	ClientEmail string `json:"client_email"`
	// ClientID is the numeric OAuth client identifier.
	ClientID string `json:"client_id,omitempty"`
	// AuthURI is the OAuth authorization endpoint.
	AuthURI string `json:"auth_uri,omitempty"`
	// TokenURI is the endpoint that exchanges signed JWTs for access tokens.
	TokenURI string `json:"token_uri"`
	// UniverseDomain is the Google Cloud universe, "googleapis.com" by default.
	UniverseDomain string `json:"universe_domain,omitempty"`
}

// ParseServiceAccountKey decodes a service-account JSON document.
// It does not validate required fields; call Validate for that.
func ParseServiceAccountKey(data []byte) (*ServiceAccountKey, error) {
	var key ServiceAccountKey
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %w", ErrCredentialParse, err)
	}
	return &key, nil
}

// Validate checks that the key carries everything needed to mint tokens.
func (k *ServiceAccountKey) Validate() error {
	if k.Type != ServiceAccountKeyType {
		return fmt.Errorf("%w: type is %q, want %q", ErrCredentialParse, k.Type, ServiceAccountKeyType)
	}
	if strings.TrimSpace(k.PrivateKey) == "" {
		return fmt.Errorf("%w: missing private_key", ErrCredentialParse)
	}
	if block, _ := pem.Decode([]byte(k.PrivateKey)); block == nil {
		return fmt.Errorf("%w: private_key is not PEM encoded", ErrCredentialParse)
	}
	if strings.TrimSpace(k.ClientEmail) == "" {
		return fmt.Errorf("%w: missing client_email", ErrCredentialParse)
	}
	if strings.TrimSpace(k.TokenURI) == "" {
		return fmt.Errorf("%w: missing token_uri", ErrCredentialParse)
	}
	u, err := url.Parse(k.TokenURI)
	if err != nil || !u.IsAbs() || (u.Scheme != "https" && u.Scheme != "http") {
		return fmt.Errorf("%w: token_uri %q is not an absolute http(s) URL", ErrCredentialParse, k.TokenURI)
	}
	return nil
}

// Redacted returns a copy of the key with the private key removed.
func (k *ServiceAccountKey) Redacted() ServiceAccountKey {
	c := *k
	c.PrivateKey = ""
	return c
}
