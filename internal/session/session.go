// Package session holds who is signed in for the duration of a request or a
// client connection. A Session is populated on successful authentication and
// cleared on sign-out; it is passed explicitly to the access policy and the
// screens instead of living in global state.
package session

import (
	"sync"

	"github.com/saadistik/Bashir.inc/internal/models"
)

// Identity is the authenticated login handle.
type Identity struct {
	UserID   string
	Username string
}

// Session is the current identity and its resolved profile.
//
// Loading is true between authentication and profile resolution; the access
// policy makes no redirect decision while it is set.
type Session struct {
	mu       sync.RWMutex
	identity *Identity
	profile  *models.Profile
	loading  bool
}

// New returns an empty, signed-out session.
func New() *Session {
	return &Session{}
}

// Begin records a freshly authenticated identity whose profile is still
// being resolved.
func (s *Session) Begin(id Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &id
	s.profile = nil
	s.loading = true
}

// Resolve finishes profile resolution. A nil profile means the identity has
// no usable profile.
func (s *Session) Resolve(p *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.loading = false
}

// Populate sets identity and profile in one step.
func (s *Session) Populate(id Identity, p *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &id
	s.profile = p
	s.loading = false
}

// Clear signs the session out.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.profile = nil
	s.loading = false
}

// Snapshot is an immutable copy of a session's state.
type Snapshot struct {
	Identity *Identity
	Profile  *models.Profile
	Loading  bool
}

// Snapshot copies the current state. A nil session reads as signed out.
func (s *Session) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{Loading: s.loading}
	if s.identity != nil {
		id := *s.identity
		snap.Identity = &id
	}
	if s.profile != nil {
		p := *s.profile
		snap.Profile = &p
	}
	return snap
}

// Authenticated reports whether an identity is present.
func (s Snapshot) Authenticated() bool {
	return s.Identity != nil
}

// Role returns the profile role, or "" when no profile is resolved.
func (s Snapshot) Role() models.Role {
	if s.Profile == nil {
		return ""
	}
	return s.Profile.Role
}

// UserID returns the identity's user ID, or "" when signed out.
func (s Snapshot) UserID() string {
	if s.Identity == nil {
		return ""
	}
	return s.Identity.UserID
}
