package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"userapp/internal/adapter/database/memory"
)

func TestKVStore_SetThenGet(t *testing.T) {
	store := memory.NewKVStore()
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "k1", "set k1"))

	value, found, err := store.Get(ctx, "k1")

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "set k1", value)
}

func TestKVStore_MissingKey(t *testing.T) {
	value, found, err := memory.NewKVStore().Get(context.Background(), "nope")

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestKVStore_PingAndClose(t *testing.T) {
	store := memory.NewKVStore()
	ctx := context.Background()

	reply, err := store.Ping(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "PONG", reply)

	_ = store.Set(ctx, "k1", "v")
	assert.NoError(t, store.Close())

	_, found, _ := store.Get(ctx, "k1")
	assert.False(t, found)
}
