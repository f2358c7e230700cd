package utils

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// PendingAction is a bulk operation awaiting its two-phase confirmation. The
// preview count was already shown to the requester; Apply runs only after the
// Confirm button is clicked before the session expires.
type PendingAction struct {
	UserID    string
	Summary   string
	Apply     func() (int, error)
	CreatedAt time.Time
}

// ConfirmCache holds pending actions keyed by a one-time session ID that is
// carried in the Confirm/Cancel button custom IDs. Entries that outlive the
// TTL are dropped by the janitor; an expired session means cancelled and
// nothing mutates.
type ConfirmCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	pending map[string]PendingAction
}

// NewConfirmCache creates a cache whose sessions expire after ttl and starts
// its janitor.
func NewConfirmCache(ttl time.Duration) *ConfirmCache {
	c := &ConfirmCache{
		ttl:     ttl,
		pending: make(map[string]PendingAction),
	}
	go c.janitor()
	return c
}

// Add stores a pending action and returns its session ID.
func (c *ConfirmCache) Add(action PendingAction) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := uuid.New().String()
	action.CreatedAt = time.Now()
	c.pending[id] = action
	return id
}

// Take removes and returns the pending action for id. The second return is
// false when the session is unknown or already expired.
func (c *ConfirmCache) Take(id string) (PendingAction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	action, found := c.pending[id]
	if !found {
		return PendingAction{}, false
	}
	delete(c.pending, id)
	if time.Since(action.CreatedAt) > c.ttl {
		return PendingAction{}, false
	}
	return action, true
}

// Remove drops a pending action without running it (the Cancel path).
func (c *ConfirmCache) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, id)
}

func (c *ConfirmCache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		for id, action := range c.pending {
			if time.Since(action.CreatedAt) > c.ttl {
				delete(c.pending, id)
			}
		}
		c.mu.Unlock()
	}
}
