// Package session holds the client's authentication state: the bearer token,
// the cached user profile, and the derived logged-in flag. The in-memory
// state is the source of truth while the process runs; a Storage backend
// keeps a durable copy so a restart can pick up where the user left off.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/mdd-app/mdd-go/internal/domain"
	"github.com/mdd-app/mdd-go/internal/token"
)

// Store is the process-wide session state. All methods are safe for
// concurrent use. Status changes are pushed to subscribers registered with
// Subscribe, replacing the reactive signal the browser client used.
type Store struct {
	mu            sync.Mutex
	storage       Storage
	logger        *slog.Logger
	token         string
	user          domain.User
	hasUser       bool
	authenticated bool
	subs          []func(loggedIn bool)
}

// NewStore builds a Store over the given durable storage. The store starts
// empty; call Hydrate once at startup to restore a previous session.
func NewStore(storage Storage, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{storage: storage, logger: logger}
}

// Hydrate restores the session from durable storage. The session becomes
// authenticated only when both entries are present and the token still passes
// validation; anything less clears both the memory and the durable record so
// no partial state survives a restart.
func (s *Store) Hydrate(ctx context.Context) {
	tok, tokOK, err := s.storage.Read(ctx, KeyToken)
	if err != nil {
		s.logger.WarnContext(ctx, "read stored token failed", "error", err)
	}
	rawUser, userOK, err := s.storage.Read(ctx, KeyUser)
	if err != nil {
		s.logger.WarnContext(ctx, "read stored user failed", "error", err)
	}

	var user domain.User
	if userOK {
		if uerr := json.Unmarshal([]byte(rawUser), &user); uerr != nil {
			s.logger.WarnContext(ctx, "stored user record is corrupt", "error", uerr)
			userOK = false
		}
	}

	if !tokOK || !userOK || !token.Valid(tok) {
		s.Clear(ctx)
		return
	}

	s.mu.Lock()
	wasAuthenticated := s.authenticated
	s.token = tok
	s.user = user
	s.hasUser = true
	s.authenticated = true
	subs := append([]func(bool){}, s.subs...)
	s.mu.Unlock()
	if !wasAuthenticated {
		notify(subs, true)
	}
}

// Populate installs the session after a successful login or register and
// persists both durable entries. The profile carries ID 0 until it is
// refreshed from a "get current user" call.
func (s *Store) Populate(ctx context.Context, tok string, username, email string) {
	now := time.Now()
	user := domain.User{
		Email:     email,
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	wasAuthenticated := s.authenticated
	s.token = tok
	s.user = user
	s.hasUser = true
	s.authenticated = true
	subs := append([]func(bool){}, s.subs...)
	s.mu.Unlock()

	s.persistToken(ctx, tok)
	s.persistUser(ctx, user)
	if !wasAuthenticated {
		notify(subs, true)
	}
}

// SetUser replaces only the stored profile, leaving the token untouched.
// Used after /auth/me and after a profile update.
func (s *Store) SetUser(ctx context.Context, user domain.User) {
	s.mu.Lock()
	s.user = user
	s.hasUser = true
	s.mu.Unlock()
	s.persistUser(ctx, user)
}

// Clear empties the session and removes both durable entries. Idempotent.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	wasAuthenticated := s.authenticated
	s.token = ""
	s.user = domain.User{}
	s.hasUser = false
	s.authenticated = false
	subs := append([]func(bool){}, s.subs...)
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, KeyToken); err != nil {
		s.logger.WarnContext(ctx, "delete stored token failed", "error", err)
	}
	if err := s.storage.Delete(ctx, KeyUser); err != nil {
		s.logger.WarnContext(ctx, "delete stored user failed", "error", err)
	}
	if wasAuthenticated {
		notify(subs, false)
	}
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the current profile and whether one is held.
func (s *Store) User() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.hasUser
}

// IsLoggedIn reports whether the session is authenticated. True implies a
// token is held.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated && s.token != ""
}

// Subscribe registers fn to be called whenever the logged-in status flips.
// Callbacks run synchronously on the mutating goroutine and must not call
// back into the store.
func (s *Store) Subscribe(fn func(loggedIn bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) persistToken(ctx context.Context, tok string) {
	if err := s.storage.Write(ctx, KeyToken, tok); err != nil {
		s.logger.WarnContext(ctx, "persist token failed", "error", err)
	}
}

func (s *Store) persistUser(ctx context.Context, user domain.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.logger.WarnContext(ctx, "encode user record failed", "error", err)
		return
	}
	if err := s.storage.Write(ctx, KeyUser, string(raw)); err != nil {
		s.logger.WarnContext(ctx, "persist user failed", "error", err)
	}
}

func notify(subs []func(bool), loggedIn bool) {
	for _, fn := range subs {
		fn(loggedIn)
	}
}
