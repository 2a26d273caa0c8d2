package google

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/fhdsl/metricminer/internal/core/domain"
)

// Google API errors a reporting call can surface.
var (
	ErrUnauthorized = errors.New("google: unauthorised (invalid credentials)")
	ErrForbidden    = errors.New("google: forbidden (insufficient permissions)")
	ErrNotFound     = errors.New("google: resource not found")
)

// statusErrors maps HTTP status codes to the connector sentinel and the
// domain error it implies.
var statusErrors = map[int]struct {
	sentinel error
	domain   error
}{
	http.StatusUnauthorized: {ErrUnauthorized, domain.ErrAuth},
	http.StatusForbidden:    {ErrForbidden, domain.ErrAuth},
	http.StatusNotFound:     {ErrNotFound, domain.ErrNotFound},
}

// StatusCode returns the HTTP status of a googleapi.Error in err's chain,
// or 0 if there is none.
func StatusCode(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return 0
}

// IsNotFound reports whether err means the resource does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || StatusCode(err) == http.StatusNotFound
}

// WrapError attaches domain meaning to a Google API error while keeping
// the original reachable through errors.As.
// 401 and 403 become domain.ErrAuth, 404 becomes domain.ErrNotFound.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	mapped, ok := statusErrors[StatusCode(err)]
	if !ok {
		return err
	}
	return fmt.Errorf("%w: %w: %w", mapped.domain, mapped.sentinel, err)
}
