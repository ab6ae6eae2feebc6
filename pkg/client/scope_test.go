package client

import (
	"errors"
	"testing"
)

func TestScopeGuard(t *testing.T) {
	var g ScopeGuard

	first := g.Enter("company:a")
	if err := g.Check(first); err != nil {
		t.Fatalf("expected current ticket to pass, got %v", err)
	}

	second := g.Enter("company:b")
	if err := g.Check(first); !errors.Is(err, ErrStaleScope) {
		t.Errorf("expected ErrStaleScope for superseded ticket, got %v", err)
	}
	if err := g.Check(second); err != nil {
		t.Errorf("expected latest ticket to pass, got %v", err)
	}

	// Re-entering the same screen also supersedes the older load.
	third := g.Enter("company:b")
	if err := g.Check(second); !errors.Is(err, ErrStaleScope) {
		t.Errorf("expected ErrStaleScope after re-entering, got %v", err)
	}
	if third.Scope() != "company:b" || g.Current() != "company:b" {
		t.Errorf("unexpected scope %q / %q", third.Scope(), g.Current())
	}
}
