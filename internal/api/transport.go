package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/mdd-app/mdd-go/internal/session"
)

// publicPaths never get a bearer header: they are reachable before any
// session exists. Logout is deliberately not here, it needs the token.
var publicPaths = []string{"/auth/login", "/auth/register"}

// authPaths are exempt from the 401 side effect below. A failed login or an
// already-dead token on logout must not recurse into another local logout.
var authPaths = []string{"/auth/login", "/auth/register", "/auth/logout"}

// authTransport is the request authorizer: it stamps every outgoing request
// with a request ID, attaches the bearer token outside the public allowlist,
// and clears the local session when the backend answers 401 to a normal
// resource call. Responses and errors always reach the caller untouched.
type authTransport struct {
	base    http.RoundTripper
	session *session.Store
	logger  *slog.Logger
}

func newAuthTransport(base http.RoundTripper, s *session.Store, logger *slog.Logger) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, session: s, logger: logger}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Request-Id", uuid.NewString())

	if !pathMatches(req.URL.Path, publicPaths) {
		if tok := t.session.Token(); tok != "" {
			(&oauth2.Token{AccessToken: tok}).SetAuthHeader(clone)
		}
	}

	resp, err := t.base.RoundTrip(clone)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !pathMatches(req.URL.Path, authPaths) {
		t.logger.InfoContext(req.Context(), "session rejected by backend, logging out locally",
			slog.String("path", req.URL.Path))
		t.session.Clear(req.Context())
	}
	return resp, nil
}

func pathMatches(path string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
