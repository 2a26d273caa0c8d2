package domain

import "errors"

// Domain errors represent failures while turning a key file into a client.
// Adapters wrap these with context; callers match them with errors.Is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Credential Errors.

	// ErrFileNotFound indicates the key file path does not resolve to a readable file.
	ErrFileNotFound = errors.New("credential file not found")

	// ErrCredentialParse indicates the key file is not a valid service-account document.
	ErrCredentialParse = errors.New("credential parse error")

	// ErrScope indicates no OAuth scopes were supplied.
	ErrScope = errors.New("no oauth scopes supplied")

	// Service Errors.

	// ErrServiceDiscovery indicates the named service/version could not be resolved.
	ErrServiceDiscovery = errors.New("service discovery failed")

	// ErrAuth indicates the credentials were rejected by the token endpoint or API.
	ErrAuth = errors.New("authentication failed")
)
