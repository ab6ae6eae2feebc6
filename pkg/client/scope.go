package client

import (
	"errors"
	"sync"
)

// ErrStaleScope is returned by a load whose screen was left before the
// load finished. Callers drop the result.
var ErrStaleScope = errors.New("result belongs to a screen that is no longer shown")

// Ticket tags one load with the scope it was started for.
type Ticket struct {
	scope string
	gen   uint64
}

// Scope returns the scope id the ticket was issued for.
func (t Ticket) Scope() string {
	return t.scope
}

// ScopeGuard tracks which screen is current. Every Enter supersedes all
// tickets issued before it, including tickets for the same scope id.
type ScopeGuard struct {
	mu      sync.Mutex
	current string
	gen     uint64
}

// Enter makes scope current and returns the ticket for its load.
func (g *ScopeGuard) Enter(scope string) Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	g.current = scope
	return Ticket{scope: scope, gen: g.gen}
}

// Current returns the current scope id.
func (g *ScopeGuard) Current() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Check fails with ErrStaleScope unless t is the latest ticket.
func (g *ScopeGuard) Check(t Ticket) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if t.gen != g.gen || t.scope != g.current {
		return ErrStaleScope
	}
	return nil
}
