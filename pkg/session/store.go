package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNoSession is returned by Lookup when no session exists for a token
var ErrNoSession = errors.New("session not found")

// Store is the session collaborator surface. Lookups happen on every request;
// the rest of the system never caches the result.
type Store interface {
	// Create mints a token for the caller, valid for ttl (0 means no expiry)
	Create(ctx context.Context, caller Caller, ttl time.Duration) (string, error)

	// Lookup resolves a bearer token to its caller, or ErrNoSession
	Lookup(ctx context.Context, token string) (*Caller, error)

	// Revoke removes the session for a token. Revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error
}

// RedisStore keeps sessions in Redis keyed by the token hash, with the TTL
// enforced by Redis expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
	}
}

func (s *RedisStore) key(tokenHash string) string {
	return s.prefix + tokenHash
}

// Create mints a token and stores the caller under its hash
func (s *RedisStore) Create(ctx context.Context, caller Caller, ttl time.Duration) (string, error) {
	token, tokenHash, err := GenerateToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(caller)
	if err != nil {
		return "", fmt.Errorf("failed to marshal caller: %w", err)
	}

	if err := s.client.Set(ctx, s.key(tokenHash), payload, ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Lookup resolves a token to its caller
func (s *RedisStore) Lookup(ctx context.Context, token string) (*Caller, error) {
	payload, err := s.client.Get(ctx, s.key(HashToken(token))).Bytes()
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	var caller Caller
	if err := json.Unmarshal(payload, &caller); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &caller, nil
}

// Revoke removes the session for a token
func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(HashToken(token))).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// MemoryStore keeps sessions in process memory. It backs dev mode and tests;
// production deployments use the Redis store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

type memorySession struct {
	caller    Caller
	expiresAt time.Time // zero means no expiry
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memorySession),
	}
}

// Create mints a token and stores the caller under its hash
func (s *MemoryStore) Create(ctx context.Context, caller Caller, ttl time.Duration) (string, error) {
	token, tokenHash, err := GenerateToken()
	if err != nil {
		return "", err
	}

	entry := memorySession{caller: caller}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.sessions[tokenHash] = entry
	s.mu.Unlock()

	return token, nil
}

// Lookup resolves a token to its caller
func (s *MemoryStore) Lookup(ctx context.Context, token string) (*Caller, error) {
	s.mu.RLock()
	entry, ok := s.sessions[HashToken(token)]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNoSession
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		return nil, ErrNoSession
	}

	caller := entry.caller
	return &caller, nil
}

// Revoke removes the session for a token
func (s *MemoryStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, HashToken(token))
	s.mu.Unlock()
	return nil
}
