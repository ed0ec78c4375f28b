package contact

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// guardMaxAge bounds how long a submitter entry is kept at all; the
// sweep drops anything older regardless of the duplicate window.
const guardMaxAge = time.Hour

// Guard rejects repeat contact submissions from the same email inside
// a trailing window. Identity is the lowercased email address.
type Guard struct {
	mu     sync.Mutex
	last   map[string]time.Time
	window time.Duration
	now    func() time.Time
}

// NewGuard creates a guard with the given duplicate window.
func NewGuard(window time.Duration) *Guard {
	return &Guard{
		last:   make(map[string]time.Time),
		window: window,
		now:    time.Now,
	}
}

// Allow reports whether a submission from email may proceed. Stale
// entries encountered on access are dropped.
func (g *Guard) Allow(email string) bool {
	key := strings.ToLower(strings.TrimSpace(email))
	now := g.now()

	g.mu.Lock()
	defer g.mu.Unlock()

	at, ok := g.last[key]
	if !ok {
		return true
	}
	if now.Sub(at) >= g.window {
		delete(g.last, key)
		return true
	}
	return false
}

// Window returns the duplicate window the guard enforces.
func (g *Guard) Window() time.Duration {
	return g.window
}

// Mark records a successful submission from email.
func (g *Guard) Mark(email string) {
	key := strings.ToLower(strings.TrimSpace(email))

	g.mu.Lock()
	defer g.mu.Unlock()
	g.last[key] = g.now()
}

// Sweep drops entries older than guardMaxAge and returns how many were
// removed.
func (g *Guard) Sweep() int {
	now := g.now()

	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for key, at := range g.last {
		if now.Sub(at) >= guardMaxAge {
			delete(g.last, key)
			removed++
		}
	}
	return removed
}

// Run sweeps on the given interval until ctx is cancelled. Started as
// a background goroutine from main.
func (g *Guard) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := g.Sweep(); removed > 0 {
				slog.Debug("contact guard sweep", "removed", removed)
			}
		}
	}
}
