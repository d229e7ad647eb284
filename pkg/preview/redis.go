package preview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisConfig configures a RedisStore.
type RedisConfig struct {
	// TTL is how long an unused reference stays live. Every Get extends it.
	TTL       time.Duration `env:"PREVIEW_TTL" envDefault:"30m"`
	KeyPrefix string        `env:"PREVIEW_KEY_PREFIX" envDefault:"biodata:preview:"`
}

// RedisStore keeps preview objects in Redis hashes so that every instance
// behind a load balancer can serve them. References expire after the
// configured TTL of inactivity; expiry does not run the revoke callback.
type RedisStore struct {
	options
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
}

var _ Store = (*RedisStore)(nil)

const (
	fieldName        = "name"
	fieldContentType = "content_type"
	fieldData        = "data"
	fieldCreatedAt   = "created_at"
)

// NewRedisStore creates a store on client. A non-positive TTL falls back to
// 30 minutes.
func NewRedisStore(client redis.UniversalClient, cfg RedisConfig, opts ...Option) *RedisStore {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}
	return &RedisStore{
		options: newOptions(opts),
		client:  client,
		ttl:     cfg.TTL,
		prefix:  cfg.KeyPrefix,
	}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) Create(ctx context.Context, name, contentType string, data []byte) (Ref, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	key := s.key(id.String())
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, map[string]any{
			fieldName:        name,
			fieldContentType: contentType,
			fieldData:        data,
			fieldCreatedAt:   s.now().UTC().Format(time.RFC3339Nano),
		})
		p.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	return Ref{ID: id.String(), URL: s.url(id.String())}, nil
}

func (s *RedisStore) Replace(ctx context.Context, previous, name, contentType string, data []byte) (Ref, error) {
	ref, err := s.Create(ctx, name, contentType, data)
	if err != nil {
		return Ref{}, err
	}
	if previous != "" {
		if err := s.take(ctx, previous, Replaced); err != nil && !errors.Is(err, ErrNotFound) {
			return ref, err
		}
	}
	return ref, nil
}

// Get returns the object behind id and extends its TTL.
func (s *RedisStore) Get(ctx context.Context, id string) (Object, error) {
	key := s.key(id)
	var get *redis.MapStringStringCmd
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		get = p.HGetAll(ctx, key)
		p.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return Object{}, fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}
	return decodeObject(id, get.Val())
}

func (s *RedisStore) Revoke(ctx context.Context, id string) error {
	return s.take(ctx, id, Revoked)
}

func (s *RedisStore) URL(id string) string {
	return s.url(id)
}

// take reads and deletes id atomically, then runs the revoke callback.
func (s *RedisStore) take(ctx context.Context, id string, reason RevokeReason) error {
	key := s.key(id)
	var get *redis.MapStringStringCmd
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		get = p.HGetAll(ctx, key)
		p.Del(ctx, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	obj, err := decodeObject(id, get.Val())
	if err != nil {
		return err
	}
	s.revoked(obj, reason)
	return nil
}

func decodeObject(id string, fields map[string]string) (Object, error) {
	if len(fields) == 0 {
		return Object{}, ErrNotFound
	}
	obj := Object{
		ID:          id,
		Name:        fields[fieldName],
		ContentType: fields[fieldContentType],
		Data:        []byte(fields[fieldData]),
	}
	if ts, ok := fields[fieldCreatedAt]; ok {
		created, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return Object{}, fmt.Errorf("%w: created_at: %w", ErrStoreFailed, err)
		}
		obj.CreatedAt = created
	}
	return obj, nil
}
