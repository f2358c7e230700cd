package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmCache_AddThenTake(t *testing.T) {
	cache := NewConfirmCache(time.Minute)

	ran := false
	id := cache.Add(PendingAction{
		UserID:  "user1",
		Summary: "purge 3 suggestions",
		Apply:   func() (int, error) { ran = true; return 3, nil },
	})
	require.NotEmpty(t, id)

	action, ok := cache.Take(id)
	require.True(t, ok)
	assert.Equal(t, "user1", action.UserID)

	n, err := action.Apply()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, ran)
}

func TestConfirmCache_TakeConsumesSession(t *testing.T) {
	cache := NewConfirmCache(time.Minute)
	id := cache.Add(PendingAction{UserID: "user1"})

	_, ok := cache.Take(id)
	require.True(t, ok)

	_, ok = cache.Take(id)
	assert.False(t, ok, "a session can only be taken once")
}

func TestConfirmCache_UnknownSession(t *testing.T) {
	cache := NewConfirmCache(time.Minute)

	_, ok := cache.Take("not-a-session")
	assert.False(t, ok)
}

func TestConfirmCache_ExpiredSessionIsRejected(t *testing.T) {
	cache := NewConfirmCache(time.Millisecond)
	id := cache.Add(PendingAction{UserID: "user1"})

	time.Sleep(5 * time.Millisecond)

	_, ok := cache.Take(id)
	assert.False(t, ok, "expired sessions must not run")
}

func TestConfirmCache_RemoveDropsWithoutRunning(t *testing.T) {
	cache := NewConfirmCache(time.Minute)
	id := cache.Add(PendingAction{UserID: "user1"})

	cache.Remove(id)

	_, ok := cache.Take(id)
	assert.False(t, ok)
}
