// Package memory is an in-process KVStore backed by go-cache.
package memory

import (
	"context"

	"github.com/patrickmn/go-cache"

	"userapp/internal/core/port"
)

const pong = "PONG"

type kvStore struct {
	cache *cache.Cache
}

func NewKVStore() port.KVStore {
	return &kvStore{cache: cache.New(cache.NoExpiration, 0)}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, found := s.cache.Get(key)

	if !found {
		return "", false, nil
	}

	return value.(string), true, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value string) error {
	s.cache.Set(key, value, cache.NoExpiration)
	return nil
}

func (s *kvStore) Ping(ctx context.Context) (string, error) {
	return pong, nil
}

func (s *kvStore) Close() error {
	s.cache.Flush()
	return nil
}
