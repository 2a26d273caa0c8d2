// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go and depend only on domain and port packages.
package services
