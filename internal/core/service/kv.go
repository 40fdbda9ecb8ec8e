package service

import (
	"context"
	"time"

	"userapp/internal/core/port"
	tel "userapp/internal/core/telemetry"
)

const (
	kvServiceName = "kv"
	pong          = "PONG"
)

type KVService struct {
	store     port.KVStore
	telemetry port.Telemetry
}

func NewKVService(store port.KVStore, telemetry port.Telemetry) *KVService {
	if telemetry == nil {
		telemetry = tel.NewNoOpTelemetry()
	}

	return &KVService{
		store:     store,
		telemetry: telemetry,
	}
}

func (s *KVService) Get(ctx context.Context, id string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := s.observe(ctx, "get", func(ctx context.Context) (err error) {
		value, found, err = s.store.Get(ctx, id)
		return err
	})

	return value, found, err
}

// Set stores the marker value "set <id>" under id.
func (s *KVService) Set(ctx context.Context, id string) error {
	return s.observe(ctx, "set", func(ctx context.Context) error {
		return s.store.Set(ctx, id, "set "+id)
	})
}

// Watch reports whether the store answered PING with PONG.
func (s *KVService) Watch(ctx context.Context) (bool, error) {
	var reply string

	err := s.observe(ctx, "watch", func(ctx context.Context) (err error) {
		reply, err = s.store.Ping(ctx)
		return err
	})

	if err != nil {
		return false, err
	}

	return reply == pong, nil
}

func (s *KVService) observe(ctx context.Context, operation string, fn func(context.Context) error) error {
	ctx, span := s.telemetry.StartServiceSpan(ctx, kvServiceName, operation, nil)
	defer span.End()

	start := time.Now()
	err := fn(ctx)

	s.telemetry.RecordServiceOperation(ctx, kvServiceName, operation, time.Since(start), err)

	return err
}
