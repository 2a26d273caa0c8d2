package driven

// ConfigStore holds settings under dotted keys such as
// "credentials.key_file". File-backed implementations write each prefix
// as a section.
//
// The typed getters return the zero value when a key is missing or holds
// another type; use Get to tell the two apart.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetBool(key string) bool
	// GetStringSlice returns a copy the caller may modify.
	GetStringSlice(key string) []string

	// Set and Delete persist immediately. Deleting a missing key is not
	// an error.
	Set(key string, value any) error
	Delete(key string) error

	// Keys lists stored keys in sorted order.
	Keys() []string

	Save() error
	Load() error

	// Path names the backing file, or a placeholder for stores without one.
	Path() string
}
