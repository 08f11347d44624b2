package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKV guarda los documentos como strings bajo <prefix><key>.
type RedisKV struct {
	client *redis.Client
	prefix string
}

var _ KV = (*RedisKV)(nil)

// NewRedisKV conecta con la URL indicada y verifica con PING.
func NewRedisKV(ctx context.Context, url, prefix string) (*RedisKV, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("localstore: url redis: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("localstore: ping redis: %w", err)
	}
	return &RedisKV{client: client, prefix: prefix}, nil
}

func (s *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: redis get %s: %w", key, err)
	}
	return b, nil
}

func (s *RedisKV) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("localstore: redis set %s: %w", key, err)
	}
	return nil
}

// Close libera la conexión.
func (s *RedisKV) Close() error {
	return s.client.Close()
}
