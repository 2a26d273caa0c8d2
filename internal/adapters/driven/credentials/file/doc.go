// Package file loads service-account keys from the local filesystem.
//
// The Loader reads one key file per call, validates it as a service-account
// document and binds it to the requested OAuth scopes. It performs no
// network I/O: whether Google accepts the key is decided later, when a
// token is first requested.
package file
