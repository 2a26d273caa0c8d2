package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2/google"

	"github.com/fhdsl/metricminer/internal/core/domain"
	"github.com/fhdsl/metricminer/internal/core/ports/driven"
	"github.com/fhdsl/metricminer/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.CredentialLoader = (*Loader)(nil)

// Loader is a file-backed driven.CredentialLoader.
type Loader struct {
	now func() time.Time
}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{now: time.Now}
}

// Load reads the key at path and binds it to scopes.
func (l *Loader) Load(ctx context.Context, path string, scopes []string) (*domain.ScopedCredentials, error) {
	scopes = domain.NormaliseScopes(scopes)
	if len(scopes) == 0 {
		return nil, fmt.Errorf("load credentials: %w", domain.ErrScope)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolved, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w: %w", domain.ErrFileNotFound, err)
	}
	if resolved == "" {
		return nil, fmt.Errorf("load credentials: %w: no key file configured", domain.ErrFileNotFound)
	}

	logger.Debug("Reading service account key from: %s", resolved)

	data, err := readKeyFile(resolved)
	if err != nil {
		return nil, err
	}

	key, err := domain.ParseServiceAccountKey(data)
	if err != nil {
		return nil, fmt.Errorf("load credentials from %s: %w", resolved, err)
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("load credentials from %s: %w", resolved, err)
	}

	// The oauth2 library must accept the document too, or token minting
	// would fail later with a less specific error.
	if _, err := google.JWTConfigFromJSON(data, scopes...); err != nil {
		return nil, fmt.Errorf("load credentials from %s: %w: %w", resolved, domain.ErrCredentialParse, err)
	}

	if logger.IsVerbose() {
		redacted, _ := json.Marshal(key.Redacted())
		logger.Debug("Loaded key %s with %d scope(s)", redacted, len(scopes))
	}

	return &domain.ScopedCredentials{
		Key:      *key,
		KeyJSON:  data,
		Scopes:   scopes,
		Path:     resolved,
		LoadedAt: l.now(),
	}, nil
}

func readKeyFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load credentials: %w: %s", domain.ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w: %w", domain.ErrFileNotFound, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("load credentials: %w: %s is a directory", domain.ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w: %w", domain.ErrFileNotFound, err)
	}
	return data, nil
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}

	return path, nil
}
