package driven

import (
	"context"

	"github.com/fhdsl/metricminer/internal/core/domain"
)

// CredentialLoader turns a key file into scoped credentials.
// Implementations read the file and validate it; they make no network calls.
type CredentialLoader interface {
	// Load reads the key at path and binds it to scopes.
	// Returns domain.ErrScope when scopes is empty, domain.ErrFileNotFound when
	// path does not resolve, and domain.ErrCredentialParse when the document
	// is malformed or incomplete.
	Load(ctx context.Context, path string, scopes []string) (*domain.ScopedCredentials, error)
}
