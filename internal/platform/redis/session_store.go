package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/phrazzld/storefront-kit/internal/session"
)

const (
	defaultKeyPrefix = "session:"

	// maxTxRetries bounds how often an atomic section is replayed after a
	// concurrent writer touched the session hash.
	maxTxRetries = 10
)

// SessionStore implements session.Store on Redis. Each session is one hash
// under "<prefix><id>" whose TTL is refreshed on every open and write.
type SessionStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

var _ session.Store = (*SessionStore)(nil)

// NewSessionStore creates a SessionStore on an existing client. The store
// takes ownership of the client and closes it in Close.
func NewSessionStore(client *goredis.Client, ttl time.Duration, logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		client: client,
		prefix: defaultKeyPrefix,
		ttl:    ttl,
		logger: logger,
	}
}

// NewSessionStoreFromURL parses a redis:// URL, connects and checks the
// connection with PING.
func NewSessionStoreFromURL(
	ctx context.Context,
	url string,
	ttl time.Duration,
	logger *slog.Logger,
) (*SessionStore, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return NewSessionStore(client, ttl, logger), nil
}

// Open implements session.Store.
func (s *SessionStore) Open(ctx context.Context, id string) (session.Session, error) {
	if id == "" {
		return nil, session.ErrInvalidID
	}

	rs := &redisSession{store: s, id: id, key: s.prefix + id}
	if s.ttl > 0 {
		// no-op for a session that holds nothing yet
		if err := s.client.Expire(ctx, rs.key, s.ttl).Err(); err != nil {
			return nil, fmt.Errorf("failed to refresh session ttl: %w", err)
		}
	}
	return rs, nil
}

// Ping checks the connection.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close implements session.Store.
func (s *SessionStore) Close() error {
	return s.client.Close()
}

type redisSession struct {
	store *SessionStore
	id    string
	key   string
}

func (r *redisSession) ID() string { return r.id }

func (r *redisSession) Get(ctx context.Context, key string) (string, error) {
	return hget(ctx, r.store.client, r.key, key)
}

func (r *redisSession) Set(ctx context.Context, key, value string) error {
	_, err := r.store.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.HSet(ctx, r.key, key, value)
		r.expire(ctx, p)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set session key: %w", err)
	}
	return nil
}

func (r *redisSession) Delete(ctx context.Context, key string) error {
	if err := r.store.client.HDel(ctx, r.key, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session key: %w", err)
	}
	return nil
}

// Atomic runs fn under WATCH on the session hash and commits its staged
// writes in MULTI/EXEC. If another client modified the hash in between, the
// section is replayed against the new state.
func (r *redisSession) Atomic(ctx context.Context, fn func(session.Values) error) error {
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.store.client.Watch(ctx, func(tx *goredis.Tx) error {
			b := session.NewBatch(func(ctx context.Context, key string) (string, error) {
				return hget(ctx, tx, r.key, key)
			})
			if err := fn(b); err != nil {
				return err
			}
			if b.Empty() {
				return nil
			}

			_, err := tx.TxPipelined(ctx, func(p goredis.Pipeliner) error {
				for k, v := range b.Writes() {
					p.HSet(ctx, r.key, k, v)
				}
				if dels := b.Deletes(); len(dels) > 0 {
					p.HDel(ctx, r.key, dels...)
				}
				if len(b.Writes()) > 0 {
					r.expire(ctx, p)
				}
				return nil
			})
			return err
		}, r.key)

		if errors.Is(err, goredis.TxFailedErr) {
			r.store.logger.Debug("session transaction conflict, retrying",
				"attempt", attempt+1)
			continue
		}
		return err
	}
	return session.ErrConflict
}

func (r *redisSession) expire(ctx context.Context, p goredis.Pipeliner) {
	if r.store.ttl > 0 {
		p.Expire(ctx, r.key, r.store.ttl)
	}
}

type hashGetter interface {
	HGet(ctx context.Context, key, field string) *goredis.StringCmd
}

func hget(ctx context.Context, c hashGetter, hash, key string) (string, error) {
	v, err := c.HGet(ctx, hash, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", session.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session key: %w", err)
	}
	return v, nil
}
