package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/entity"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/infrastructure/cache"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return s, client
}

func newSession(t *testing.T, ttl time.Duration) *entity.AnonymousSession {
	t.Helper()
	room, err := entity.NewRoom("Room", valueobject.RoomTypeCustom, uuid.New())
	require.NoError(t, err)
	link, err := entity.NewShareLink(room, authz.AccessRead, true, room.OwnerID)
	require.NoError(t, err)
	pw, err := valueobject.NewLinkPassword("secret")
	require.NoError(t, err)
	link.UpdatePassword(&pw)

	session, err := entity.NewAnonymousSession(link, ttl, time.Now())
	require.NoError(t, err)
	return session
}

func TestAnonymousSessionStore_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	s, client := newRedis(t)
	store := cache.NewAnonymousSessionStore(client)
	session := newSession(t, time.Hour)

	require.NoError(t, store.Save(ctx, session))

	got, err := store.FindByKey(ctx, session.Key)
	require.NoError(t, err)
	assert.Equal(t, session.LinkID, got.LinkID)
	assert.Equal(t, session.PasswordStamp, got.PasswordStamp)

	ttl := s.TTL(cache.AnonymousSessionKey(session.Key))
	assert.True(t, ttl > 59*time.Minute && ttl <= time.Hour, "ttl = %v", ttl)
}

func TestAnonymousSessionStore_ExpiresWithTTL(t *testing.T) {
	ctx := context.Background()
	s, client := newRedis(t)
	store := cache.NewAnonymousSessionStore(client)
	session := newSession(t, time.Minute)
	require.NoError(t, store.Save(ctx, session))

	s.FastForward(2 * time.Minute)

	_, err := store.FindByKey(ctx, session.Key)
	assert.True(t, apperror.IsNotFound(err))
}

func TestAnonymousSessionStore_Delete(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	store := cache.NewAnonymousSessionStore(client)
	session := newSession(t, time.Hour)
	require.NoError(t, store.Save(ctx, session))

	require.NoError(t, store.Delete(ctx, session.Key))

	_, err := store.FindByKey(ctx, session.Key)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSharedInboxStore(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	store := cache.NewSharedInboxStore(client)
	a, b := uuid.New(), uuid.New()

	n, err := store.Count(ctx, a)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, store.Increment(ctx, []uuid.UUID{a, b}))
	require.NoError(t, store.Increment(ctx, []uuid.UUID{a}))
	require.NoError(t, store.Increment(ctx, nil))

	n, err = store.Count(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, store.Reset(ctx, a))
	n, err = store.Count(ctx, a)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = store.Count(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRateLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	limiter := cache.NewRateLimiter(client)
	cfg := cache.RateLimitConfig{Type: "test", Requests: 2, Window: time.Hour}

	first, err := limiter.Allow(ctx, "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.Equal(t, 1, first.Remaining)

	second, err := limiter.Allow(ctx, "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.True(t, second.Allowed)

	third, err := limiter.Allow(ctx, "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.False(t, third.Allowed)

	other, err := limiter.Allow(ctx, "5.6.7.8", cfg)
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}
