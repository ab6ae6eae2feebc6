package session

import (
	"testing"

	"github.com/saadistik/Bashir.inc/internal/models"
)

func TestSessionLifecycle(t *testing.T) {
	s := New()
	if s.Snapshot().Authenticated() {
		t.Fatal("new session should be signed out")
	}

	s.Begin(Identity{UserID: "u1", Username: "amir"})
	snap := s.Snapshot()
	if !snap.Authenticated() || !snap.Loading {
		t.Fatalf("after Begin: authenticated=%v loading=%v", snap.Authenticated(), snap.Loading)
	}
	if snap.Role() != "" {
		t.Errorf("role while loading = %q", snap.Role())
	}

	s.Resolve(&models.Profile{ID: "u1", Role: models.RoleOwner})
	snap = s.Snapshot()
	if snap.Loading || snap.Role() != models.RoleOwner || snap.UserID() != "u1" {
		t.Errorf("after Resolve: %+v", snap)
	}

	s.Clear()
	snap = s.Snapshot()
	if snap.Authenticated() || snap.Profile != nil || snap.Loading {
		t.Errorf("after Clear: %+v", snap)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	s.Populate(Identity{UserID: "u1"}, &models.Profile{ID: "u1", Role: models.RoleEmployee})

	snap := s.Snapshot()
	snap.Profile.Role = models.RoleOwner

	if got := s.Snapshot().Role(); got != models.RoleEmployee {
		t.Errorf("session role changed through snapshot: %q", got)
	}
}

func TestNilSessionIsSignedOut(t *testing.T) {
	var s *Session
	if s.Snapshot().Authenticated() {
		t.Error("nil session should read as signed out")
	}
}
