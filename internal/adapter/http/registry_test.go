package http

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
	"github.com/flight-search/offer-exploration-engine/internal/infrastructure/timeutil"
)

func newTestRegistry(ttl time.Duration) (*Registry, *timeutil.MockClock) {
	clock := timeutil.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	return NewRegistryWithClock(30, ttl, zerolog.Nop(), clock), clock
}

func TestRegistry_CreateAndGet(t *testing.T) {
	registry, _ := newTestRegistry(time.Hour)

	session := registry.Create()
	require.NotNil(t, session)
	assert.NotEmpty(t, session.ID())
	assert.Equal(t, 30, session.PageSize())

	got, err := registry.Get(session.ID())
	require.NoError(t, err)
	assert.Same(t, session, got)
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry, _ := newTestRegistry(time.Hour)

	_, err := registry.Get("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRegistry_Delete(t *testing.T) {
	registry, _ := newTestRegistry(time.Hour)
	session := registry.Create()

	assert.True(t, registry.Delete(session.ID()))
	assert.False(t, registry.Delete(session.ID()))
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_UniqueIDs(t *testing.T) {
	registry, _ := newTestRegistry(time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := registry.Create().ID()
		assert.False(t, seen[id], "duplicate session id %s", id)
		seen[id] = true
	}
}

func TestRegistry_PruneExpired(t *testing.T) {
	registry, clock := newTestRegistry(30 * time.Minute)

	stale := registry.Create()
	clock.Advance(20 * time.Minute)
	fresh := registry.Create()

	// Neither session has crossed the TTL yet.
	assert.Equal(t, 0, registry.PruneExpired())

	clock.Advance(15 * time.Minute)

	assert.Equal(t, 1, registry.PruneExpired())
	assert.Equal(t, 1, registry.Len())

	_, err := registry.Get(stale.ID())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = registry.Get(fresh.ID())
	assert.NoError(t, err)
}

func TestRegistry_GetRefreshesExpiry(t *testing.T) {
	registry, clock := newTestRegistry(30 * time.Minute)
	session := registry.Create()

	// Touch the session just before it would expire.
	clock.Advance(25 * time.Minute)
	_, err := registry.Get(session.ID())
	require.NoError(t, err)

	clock.Advance(25 * time.Minute)

	assert.Equal(t, 0, registry.PruneExpired())
	_, err = registry.Get(session.ID())
	assert.NoError(t, err)
}

func TestRegistry_ZeroTTLDisablesExpiry(t *testing.T) {
	registry, clock := newTestRegistry(0)
	registry.Create()

	clock.Advance(1000 * time.Hour)

	assert.Equal(t, 0, registry.PruneExpired())
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry, _ := newTestRegistry(time.Hour)

	var wg sync.WaitGroup
	ids := make(chan string, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- registry.Create().ID()
		}()
	}
	wg.Wait()
	close(ids)

	for id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := registry.Get(id)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 50, registry.Len())
}
