package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"userapp/internal/core/domain"
	"userapp/internal/core/port"
)

type Config struct {
	// Addr is host:port or a redis:// URL.
	Addr     string
	PoolSize int
	// PoolTimeout bounds the wait for a free pooled connection.
	PoolTimeout time.Duration
}

type kvStore struct {
	client *goredis.Client
}

func NewKVStore(cfg Config) (port.KVStore, error) {
	opts, err := options(cfg)

	if err != nil {
		return nil, err
	}

	return &kvStore{client: goredis.NewClient(opts)}, nil
}

func options(cfg Config) (*goredis.Options, error) {
	opts := &goredis.Options{Addr: cfg.Addr}

	if strings.HasPrefix(cfg.Addr, "redis://") || strings.HasPrefix(cfg.Addr, "rediss://") {
		parsed, err := goredis.ParseURL(cfg.Addr)

		if err != nil {
			return nil, err
		}

		opts = parsed
	}

	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	opts.PoolTimeout = cfg.PoolTimeout

	if opts.PoolTimeout <= 0 {
		opts.PoolTimeout = time.Second
	}

	return opts, nil
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()

	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}

	if err != nil {
		return "", false, domain.NewStoreError("get", err)
	}

	return value, true, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value string) error {
	return domain.NewStoreError("set", s.client.Set(ctx, key, value, 0).Err())
}

func (s *kvStore) Ping(ctx context.Context) (string, error) {
	reply, err := s.client.Ping(ctx).Result()

	if err != nil {
		return "", domain.NewStoreError("ping", err)
	}

	return reply, nil
}

func (s *kvStore) Close() error {
	return s.client.Close()
}
