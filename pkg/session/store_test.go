package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStoreCreateAndLookup(t *testing.T) {
	store, _ := testRedisStore(t)
	ctx := context.Background()

	caller := Caller{ID: "u1", Username: "ayse", Role: RoleManager}
	token, err := store.Create(ctx, caller, time.Hour)
	require.NoError(t, err)
	require.NoError(t, ValidateTokenFormat(token))

	got, err := store.Lookup(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, caller, *got)
}

func TestRedisStoreLookupUnknownToken(t *testing.T) {
	store, _ := testRedisStore(t)

	_, err := store.Lookup(context.Background(), "st_dGVzdHRva2Vu")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := testRedisStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, Caller{ID: "u1", Username: "ayse", Role: RoleUser}, time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Lookup(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRedisStoreRevoke(t *testing.T) {
	store, _ := testRedisStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, Caller{ID: "u1", Username: "ayse", Role: RoleAdmin}, 0)
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, token))

	_, err = store.Lookup(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)

	// Revoking again is a no-op.
	assert.NoError(t, store.Revoke(ctx, token))
}

func TestRedisStoreKeysAreHashes(t *testing.T) {
	store, mr := testRedisStore(t)

	token, err := store.Create(context.Background(), Caller{ID: "u1", Username: "ayse", Role: RoleUser}, 0)
	require.NoError(t, err)

	// The raw token must never appear in storage.
	assert.False(t, mr.Exists("session:"+token))
	assert.True(t, mr.Exists("session:"+HashToken(token)))
}

func TestMemoryStoreCreateLookupRevoke(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	caller := Caller{ID: "u2", Username: "mehmet", Role: RoleUser}
	token, err := store.Create(ctx, caller, 0)
	require.NoError(t, err)

	got, err := store.Lookup(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, caller, *got)

	require.NoError(t, store.Revoke(ctx, token))

	_, err = store.Lookup(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, Caller{ID: "u2", Username: "mehmet", Role: RoleUser}, time.Nanosecond)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = store.Lookup(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}
