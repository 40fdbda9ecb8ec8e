package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"userapp/internal/adapter/database/memory"
	"userapp/internal/core/port"
	"userapp/internal/core/service"
)

type brokenStore struct {
	port.KVStore
	reply string
	err   error
}

func (b brokenStore) Ping(ctx context.Context) (string, error) {
	return b.reply, b.err
}

func TestKVService_SetStoresMarker(t *testing.T) {
	svc := service.NewKVService(memory.NewKVStore(), nil)
	ctx := context.Background()

	assert.NoError(t, svc.Set(ctx, "k1"))

	value, found, err := svc.Get(ctx, "k1")

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "set k1", value)
}

func TestKVService_GetMissing(t *testing.T) {
	_, found, err := service.NewKVService(memory.NewKVStore(), nil).Get(context.Background(), "absent")

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestKVService_Watch(t *testing.T) {
	ctx := context.Background()

	healthy, err := service.NewKVService(memory.NewKVStore(), nil).Watch(ctx)
	assert.NoError(t, err)
	assert.True(t, healthy)

	healthy, err = service.NewKVService(brokenStore{reply: "pong"}, nil).Watch(ctx)
	assert.NoError(t, err)
	assert.False(t, healthy)

	healthy, err = service.NewKVService(brokenStore{err: errors.New("dial tcp: refused")}, nil).Watch(ctx)
	assert.Error(t, err)
	assert.False(t, healthy)
}
