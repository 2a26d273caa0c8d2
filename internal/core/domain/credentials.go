package domain

import (
	"strings"
	"time"
)

// ScopedCredentials binds a validated service-account key to OAuth scopes.
// It lives only for the current invocation and is never serialized.
type ScopedCredentials struct {
	// Key is the parsed key document.
	Key ServiceAccountKey `json:"-"`
	// KeyJSON is the raw key document as read from disk.
	KeyJSON []byte `json:"-"`
	// Scopes are the OAuth scopes tokens will be requested for.
	Scopes []string `json:"-"`
	// Path is where the key was loaded from.
	Path string `json:"-"`
	// LoadedAt is when the key was read.
	LoadedAt time.Time `json:"-"`
}

// Account returns the service account email the credentials act as.
func (c *ScopedCredentials) Account() string {
	return c.Key.ClientEmail
}

// HasScope returns true if the credentials were scoped with s.
func (c *ScopedCredentials) HasScope(s string) bool {
	for _, scope := range c.Scopes {
		if scope == s {
			return true
		}
	}
	return false
}

// NormaliseScopes trims blanks and drops duplicates, preserving order.
func NormaliseScopes(scopes []string) []string {
	seen := make(map[string]bool, len(scopes))
	result := make([]string, 0, len(scopes))
	for _, s := range scopes {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		result = append(result, s)
	}
	return result
}

// ParseScopes splits a comma-separated scope list.
func ParseScopes(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return NormaliseScopes(strings.Split(s, ","))
}
