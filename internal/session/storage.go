package session

import "context"

// Storage keys for the two durable session entries. They are written and
// removed as a pair, but the pair is best-effort, not transactional: a crash
// between the two writes can leave one entry behind. Hydrate treats any
// incomplete pair as logged out.
const (
	KeyToken = "auth_token"
	KeyUser  = "current_user"
)

// Storage persists the durable session record. Implementations hold raw
// strings; serialization is the store's concern.
type Storage interface {
	// Read returns the value for key and whether it was present.
	Read(ctx context.Context, key string) (string, bool, error)
	// Write stores value under key, replacing any previous value.
	Write(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
