// Package credstore provides the secure credential store used by the seller
// client: a small key-value persistence layer holding the auth token and the
// serialized user profile across process restarts.
package credstore

import (
	"context"
	"errors"
)

// Keys used by the session manager.
const (
	// KeyAuthToken holds the raw bearer-token string.
	KeyAuthToken = "auth_token"
	// KeyUserProfile holds the JSON-serialized user profile.
	KeyUserProfile = "user_profile"
)

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("credential not found")

// Store defines how credentials are stored and retrieved. Implementations
// must treat Delete of an absent key as a no-op.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
