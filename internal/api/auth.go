package api

import (
	"context"
	"net/http"

	"github.com/mdd-app/mdd-go/internal/domain"
	"github.com/mdd-app/mdd-go/internal/errclass"
)

// Login authenticates with the backend and populates the session on success.
// The returned error, when non-nil, carries a user-facing message; nothing is
// retried.
func (c *Client) Login(ctx context.Context, email, password string) (domain.AuthResponse, error) {
	var resp domain.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", domain.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return domain.AuthResponse{}, normalizeAuthErr(err, "login failed")
	}
	c.session.Populate(ctx, resp.Token, resp.Username, resp.Email)
	c.logger.InfoContext(ctx, "user authenticated", "username", resp.Username)
	return resp, nil
}

// Register creates an account and logs it in; the success and error contract
// mirrors Login.
func (c *Client) Register(ctx context.Context, email, username, password string) (domain.AuthResponse, error) {
	body := domain.RegisterRequest{Email: email, Username: username, Password: password}
	var resp domain.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", body, &resp)
	if err != nil {
		return domain.AuthResponse{}, normalizeAuthErr(err, "registration failed")
	}
	c.session.Populate(ctx, resp.Token, resp.Username, resp.Email)
	c.logger.InfoContext(ctx, "user registered", "username", resp.Username)
	return resp, nil
}

// Me fetches the full profile and refreshes the session's user record. On
// failure the session keeps whatever profile it already had.
func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return domain.User{}, err
	}
	c.session.SetUser(ctx, user)
	return user, nil
}

// UpdateProfile sends only the non-empty fields of req and stores the
// returned record. The bearer header is attached here explicitly rather than
// relying on the shared transport.
func (c *Client) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (domain.User, error) {
	httpReq, err := c.newRequest(ctx, http.MethodPut, "/auth/update-profile", req)
	if err != nil {
		return domain.User{}, err
	}
	if tok := c.session.Token(); tok != "" {
		httpReq.Header.Set("Authorization", "Bearer "+tok)
	}
	var user domain.User
	if err := c.send(httpReq, &user); err != nil {
		return domain.User{}, err
	}
	c.session.SetUser(ctx, user)
	return user, nil
}

// IsLoggingOut reports whether a network logout is in flight, so views can
// disable their controls meanwhile.
func (c *Client) IsLoggingOut() bool { return c.loggingOut.Load() }

// Logout ends the session. Without a token it clears locally and reports so
// without touching the network. With one it posts to the backend and then
// clears locally no matter what the backend said: a network failure is
// logged, never allowed to keep the user logged in.
func (c *Client) Logout(ctx context.Context) string {
	tok := c.session.Token()
	if tok == "" {
		c.session.Clear(ctx)
		return "already logged out"
	}

	c.loggingOut.Store(true)
	defer c.loggingOut.Store(false)

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/logout", nil)
	if err == nil {
		req.Header.Set("Authorization", "Bearer "+tok)
		if _, serr := c.sendText(req); serr != nil {
			c.logger.WarnContext(ctx, "backend logout failed, clearing local session anyway",
				"error", serr, "error_class", errclass.Classify(serr))
		}
	} else {
		c.logger.WarnContext(ctx, "build logout request failed", "error", err)
	}

	c.session.Clear(ctx)
	return "logged out"
}

// LogoutLocal clears the session without any network call.
func (c *Client) LogoutLocal(ctx context.Context) {
	c.session.Clear(ctx)
}
