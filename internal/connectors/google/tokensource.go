package google

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/fhdsl/metricminer/internal/core/domain"
	"github.com/fhdsl/metricminer/internal/logger"
)

// TokenSourceAdapter wraps an oauth2.TokenSource so that token endpoint
// rejections surface as domain.ErrAuth.
type TokenSourceAdapter struct {
	source  oauth2.TokenSource
	account string
}

// NewTokenSource wraps source. The returned TokenSource can be used with
// option.WithTokenSource() or oauth2.NewClient().
func NewTokenSource(source oauth2.TokenSource, account string) oauth2.TokenSource {
	return &TokenSourceAdapter{
		source:  source,
		account: account,
	}
}

// Token implements oauth2.TokenSource interface.
// Called by Google API clients when they need an access token.
func (t *TokenSourceAdapter) Token() (*oauth2.Token, error) {
	tok, err := t.source.Token()
	if err != nil {
		return nil, classifyTokenError(t.account, err)
	}
	logger.Debug("Obtained access token for %s (expires %s)", t.account, tok.Expiry.Format("15:04:05"))
	return tok, nil
}

// classifyTokenError maps a token fetch failure to a domain error.
// Transport failures stay as they are; anything the token endpoint or the
// local signer rejects is an authentication failure.
func classifyTokenError(account string, err error) error {
	var retrieve *oauth2.RetrieveError
	if errors.As(err, &retrieve) {
		return fmt.Errorf("%w: token endpoint rejected %s: %w", domain.ErrAuth, account, err)
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) || isTokenFetchFailure(err) {
		return fmt.Errorf("fetch token for %s: %w", account, err)
	}

	return fmt.Errorf("%w: %s: %w", domain.ErrAuth, account, err)
}

// fetchFailurePrefix starts the errors x/oauth2/jwt returns when the token
// request itself fails. They carry the cause only as text.
const fetchFailurePrefix = "oauth2: cannot fetch token:"

func isTokenFetchFailure(err error) bool {
	return strings.HasPrefix(err.Error(), fetchFailurePrefix)
}
