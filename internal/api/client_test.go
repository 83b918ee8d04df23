package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdd-app/mdd-go/internal/domain"
	"github.com/mdd-app/mdd-go/internal/session"
)

func freshToken(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@b.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)
	return signed
}

func newSessionStore(t *testing.T) *session.Store {
	t.Helper()
	storage, err := session.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return session.NewStore(storage, nil)
}

func newTestClient(t *testing.T, store *session.Store, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(Config{
		BaseURL: srv.URL + "/api",
		Session: store,
	})
	require.NoError(t, err)
	return client, srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// assert, not require: handlers run on the server goroutine.
	assert.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestLoginPopulatesSession(t *testing.T) {
	ctx := context.Background()
	store := newSessionStore(t)

	var sawAuthHeader bool
	client, _ := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		sawAuthHeader = r.Header.Get("Authorization") != ""

		var req domain.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req.Email)
		assert.Equal(t, "x", req.Password)

		writeJSON(t, w, http.StatusOK, domain.AuthResponse{
			Token:     "t1",
			TokenType: "Bearer",
			Username:  "a",
			Email:     "a@b.com",
			ExpiresIn: 3600,
		})
	}))

	resp, err := client.Login(ctx, "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Token)
	assert.True(t, store.IsLoggedIn())
	assert.Equal(t, "t1", store.Token())
	assert.False(t, sawAuthHeader, "login is a public endpoint, no bearer header")
}

func TestLoginErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		message string
	}{
		{"401 means bad credentials", http.StatusUnauthorized, domain.ErrorResponse{Message: "Unauthorized"}, "invalid credentials"},
		{"5xx means unreachable", http.StatusBadGateway, nil, "unable to connect to server"},
		{"backend message passes through", http.StatusConflict, domain.ErrorResponse{Error: "conflict", Message: "Email already used"}, "Email already used"},
		{"fallback without message", http.StatusBadRequest, nil, "login failed"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newSessionStore(t)
			client, _ := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tc.body != nil {
					writeJSON(t, w, tc.status, tc.body)
					return
				}
				w.WriteHeader(tc.status)
			}))

			_, err := client.Login(context.Background(), "a@b.com", "bad")
			require.Error(t, err)
			assert.Equal(t, tc.message, err.Error())
			assert.Equal(t, tc.status, StatusOf(err))
			assert.False(t, store.IsLoggedIn())
		})
	}
}

func TestLoginUnreachableServer(t *testing.T) {
	store := newSessionStore(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	client, err := NewClient(Config{BaseURL: srv.URL + "/api", Session: store})
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "a@b.com", "x")
	require.Error(t, err)
	assert.Equal(t, "unable to connect to server", err.Error())
	assert.Equal(t, 0, StatusOf(err))
}

func TestRegisterPopulatesSession(t *testing.T) {
	store := newSessionStore(t)
	client, _ := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		var req domain.RegisterRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(t, w, http.StatusOK, domain.AuthResponse{
			Token: "t2", Username: req.Username, Email: req.Email, ExpiresIn: 3600,
		})
	}))

	_, err := client.Register(context.Background(), "b@c.com", "bob", "Password1!")
	require.NoError(t, err)
	assert.True(t, store.IsLoggedIn())
	user, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, "bob", user.Username)
}

func TestMeRefreshesProfileOnly(t *testing.T) {
	ctx := context.Background()
	store := newSessionStore(t)
	store.Populate(ctx, freshToken(t), "a", "a@b.com")
	tok := store.Token()

	client, _ := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer "+tok, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, domain.User{ID: 7, Username: "a", Email: "a@b.com"})
	}))

	user, err := client.Me(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 7, user.ID)

	stored, ok := store.User()
	require.True(t, ok)
	assert.EqualValues(t, 7, stored.ID)
	assert.Equal(t, tok, store.Token(), "token untouched by profile refresh")
}

func TestMeFailureKeepsCachedProfile(t *testing.T) {
	ctx := context.Background()
	store := newSessionStore(t)
	store.Populate(ctx, freshToken(t), "a", "a@b.com")

	client, _ := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Me(ctx)
	require.Error(t, err)
	user, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, "a", user.Username, "cached profile survives a failed refresh")
}

func TestUpdateProfileSendsOnlyNonEmptyFields(t *testing.T) {
	ctx := context.Background()
	store := newSessionStore(t)
	store.Populate(ctx, freshToken(t), "a", "a@b.com")
	tok := store.Token()

	client, _ := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/update-profile", r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "Bearer "+tok, r.Header.Get("Authorization"))

		var payload map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Contains(t, payload, "username")
		assert.NotContains(t, payload, "email")
		assert.NotContains(t, payload, "password")

		writeJSON(t, w, http.StatusOK, domain.User{ID: 7, Username: "newname", Email: "a@b.com"})
	}))

	user, err := client.UpdateProfile(ctx, domain.UpdateProfileRequest{Username: "newname"})
	require.NoError(t, err)
	assert.Equal(t, "newname", user.Username)

	stored, _ := store.User()
	assert.Equal(t, "newname", stored.Username)
}

func TestLogoutClearsSessionEvenWhenBackendFails(t *testing.T) {
	ctx := context.Background()
	store := newSessionStore(t)
	store.Populate(ctx, freshToken(t), "a", "a@b.com")

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // backend unreachable

	client, err := NewClient(Config{BaseURL: srv.URL + "/api", Session: store})
	require.NoError(t, err)

	msg := client.Logout(ctx)
	assert.Equal(t, "logged out", msg)
	assert.False(t, store.IsLoggedIn())
}

func TestLogoutPostsBearerThenClears(t *testing.T) {
	ctx := context.Background()
	store := newSessionStore(t)
	store.Populate(ctx, freshToken(t), "a", "a@b.com")
	tok := store.Token()

	var calls int
	client, _ := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		assert.Equal(t, "Bearer "+tok, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("Logged out successfully"))
	}))

	msg := client.Logout(ctx)
	assert.Equal(t, "logged out", msg)
	assert.Equal(t, 1, calls)
	assert.False(t, store.IsLoggedIn())
	assert.False(t, client.IsLoggingOut())
}

func TestLogoutWithoutTokenSkipsNetwork(t *testing.T) {
	ctx := context.Background()
	store := newSessionStore(t)

	var calls int
	client, _ := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	msg := client.Logout(ctx)
	assert.Equal(t, "already logged out", msg)
	assert.Zero(t, calls)
	assert.False(t, store.IsLoggedIn())
}

func TestListArticlesDecodesFeed(t *testing.T) {
	ctx := context.Background()
	store := newSessionStore(t)
	store.Populate(ctx, freshToken(t), "a", "a@b.com")

	client, _ := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/articles", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []domain.Article{
			{ID: 1, Title: "hello", AuthorUsername: "a"},
		})
	}))

	articles, err := client.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "hello", articles[0].Title)
}

func TestSearchArticlesEscapesKeyword(t *testing.T) {
	ctx := context.Background()
	store := newSessionStore(t)
	store.Populate(ctx, freshToken(t), "a", "a@b.com")

	client, _ := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/articles/search", r.URL.Path)
		assert.Equal(t, "go & rust", r.URL.Query().Get("keyword"))
		writeJSON(t, w, http.StatusOK, []domain.Article{})
	}))

	_, err := client.SearchArticles(ctx, "go & rust")
	require.NoError(t, err)
}

func TestSubscriptionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newSessionStore(t)
	store.Populate(ctx, freshToken(t), "a", "a@b.com")

	client, _ := newTestClient(t, store, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/themes/3/subscribe":
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/themes/3/subscribe":
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/api/themes/subscriptions":
			writeJSON(t, w, http.StatusOK, []int64{3})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	require.NoError(t, client.SubscribeTheme(ctx, 3))
	ids, err := client.Subscriptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids)
	require.NoError(t, client.UnsubscribeTheme(ctx, 3))
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error when base url missing")
	}
	if _, err := NewClient(Config{BaseURL: "http://localhost"}); err == nil {
		t.Fatal("expected error when session store missing")
	}
}
