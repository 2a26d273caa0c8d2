// Package domain defines the core entities for metricminer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ServiceAccountKey: A service-account JSON key document
//   - ScopedCredentials: A validated key bound to OAuth scopes
//   - ServiceDescriptor: A named, versioned remote API
//   - ClientInfo: The description of a constructed API client
//   - Settings: Where the key lives and which API to bind
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
