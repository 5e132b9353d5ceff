// Package session owns the in-memory authentication state of the seller
// client and keeps it synchronized with the credential store. It is the
// single source of truth for "is a seller logged in, and who are they".
//
// Every mutation writes through to the credential store before the
// in-memory state changes, so a process restart followed by Restore
// observes exactly what the last successful mutation left behind.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/abdullahbaig-27688/yemi-seller/internal/client/credstore"
	"github.com/abdullahbaig-27688/yemi-seller/internal/models"
)

// ErrEmptyToken is returned by Login when called with an empty token.
var ErrEmptyToken = errors.New("empty auth token")

// Manager holds the session state. The zero state is "restoring": callers
// must not trust IsAuthenticated until Restore has completed (Loading
// reports this).
type Manager struct {
	store credstore.Store

	mu      sync.Mutex
	token   string
	profile models.UserProfile
	loading bool

	restoreOnce sync.Once
}

// NewManager constructs a Manager backed by the given credential store.
// The session starts unauthenticated with loading=true until Restore runs.
func NewManager(store credstore.Store) *Manager {
	return &Manager{store: store, loading: true}
}

// Restore seeds the session from the credential store. It is invoked once
// at startup; repeated calls are no-ops. Restore fails soft: a missing or
// unreadable token means "logged out", a corrupt stored profile falls back
// to the empty default. loading becomes false exactly once, unconditionally,
// after both reads complete. Restore never returns an error.
func (m *Manager) Restore(ctx context.Context) {
	m.restoreOnce.Do(func() {
		token, err := m.store.Get(ctx, credstore.KeyAuthToken)
		if err != nil {
			token = ""
		}

		var profile models.UserProfile
		raw, err := m.store.Get(ctx, credstore.KeyUserProfile)
		if err == nil {
			if err := json.Unmarshal([]byte(raw), &profile); err != nil {
				profile = models.UserProfile{}
			}
		}

		m.mu.Lock()
		m.token = token
		m.profile = profile
		m.loading = false
		m.mu.Unlock()
	})
}

// Login stores the bearer token (and optional profile) durably, then updates
// the in-memory state. token must be non-empty. Storage errors propagate and
// leave the in-memory state untouched.
func (m *Manager) Login(ctx context.Context, token string, profile *models.UserProfile) error {
	if token == "" {
		return ErrEmptyToken
	}

	if err := m.store.Set(ctx, credstore.KeyAuthToken, token); err != nil {
		return err
	}
	if profile != nil {
		raw, err := json.Marshal(profile)
		if err != nil {
			return err
		}
		if err := m.store.Set(ctx, credstore.KeyUserProfile, string(raw)); err != nil {
			return err
		}
	}

	m.mu.Lock()
	m.token = token
	if profile != nil {
		m.profile = *profile
	}
	m.mu.Unlock()
	return nil
}

// Logout deletes both credential-store entries and clears the in-memory
// state. It is idempotent; calling it while logged out still clears state.
// The in-memory state is cleared even when the store errors, and the first
// storage error propagates.
func (m *Manager) Logout(ctx context.Context) error {
	tokenErr := m.store.Delete(ctx, credstore.KeyAuthToken)
	profileErr := m.store.Delete(ctx, credstore.KeyUserProfile)

	m.mu.Lock()
	m.token = ""
	m.profile = models.UserProfile{}
	m.mu.Unlock()

	if tokenErr != nil {
		return tokenErr
	}
	return profileErr
}

// SetProfile replaces the profile record, writing through to storage before
// updating the in-memory state.
func (m *Manager) SetProfile(ctx context.Context, profile models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, credstore.KeyUserProfile, string(raw)); err != nil {
		return err
	}

	m.mu.Lock()
	m.profile = profile
	m.mu.Unlock()
	return nil
}

// UpdateProfile merges the partial update onto the current in-memory
// profile, writes the merged result through to storage, then updates the
// in-memory state. Fields absent from the update are retained.
func (m *Manager) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	m.mu.Lock()
	merged := update.Merge(m.profile)
	m.mu.Unlock()

	return m.SetProfile(ctx, merged)
}

// Token returns the current bearer token, or "" when unauthenticated.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Profile returns a copy of the current profile.
func (m *Manager) Profile() models.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile
}

// IsAuthenticated reports whether a token is present. Not meaningful while
// Loading is still true.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token != ""
}

// Loading reports whether the initial Restore has not yet completed.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}
