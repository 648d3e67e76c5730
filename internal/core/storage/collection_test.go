package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sulabook/sulabook/internal/infrastructure/db/memory"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestReadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key degrades to empty", func(t *testing.T) {
		kv := memory.New()
		assert.Empty(t, ReadAll[record](ctx, kv, "records"))
	})

	t.Run("malformed JSON degrades to empty", func(t *testing.T) {
		kv := memory.New()
		require.NoError(t, kv.Set(ctx, "records", "{broken"))
		assert.Empty(t, ReadAll[record](ctx, kv, "records"))
	})

	t.Run("wrong shape degrades to empty", func(t *testing.T) {
		kv := memory.New()
		require.NoError(t, kv.Set(ctx, "records", `{"id":"not-a-list"}`))
		assert.Empty(t, ReadAll[record](ctx, kv, "records"))
	})

	t.Run("round-trips a collection in order", func(t *testing.T) {
		kv := memory.New()
		in := []record{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
		require.NoError(t, WriteAll(ctx, kv, "records", in))
		assert.Equal(t, in, ReadAll[record](ctx, kv, "records"))
	})
}

func TestWriteAll(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()

	// A nil collection is stored as an empty list, not JSON null.
	require.NoError(t, WriteAll[record](ctx, kv, "records", nil))
	raw, ok, err := kv.Get(ctx, "records")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestReadOne(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key yields nil", func(t *testing.T) {
		kv := memory.New()
		assert.Nil(t, ReadOne[record](ctx, kv, "current"))
	})

	t.Run("malformed JSON yields nil", func(t *testing.T) {
		kv := memory.New()
		require.NoError(t, kv.Set(ctx, "current", "not json"))
		assert.Nil(t, ReadOne[record](ctx, kv, "current"))
	})

	t.Run("round-trips a single record", func(t *testing.T) {
		kv := memory.New()
		in := record{ID: "1", Name: "a"}
		require.NoError(t, WriteOne(ctx, kv, "current", in))
		got := ReadOne[record](ctx, kv, "current")
		require.NotNil(t, got)
		assert.Equal(t, in, *got)
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()

	require.NoError(t, WriteOne(ctx, kv, "current", record{ID: "1"}))
	require.NoError(t, Clear(ctx, kv, "current"))
	assert.Nil(t, ReadOne[record](ctx, kv, "current"))

	// Clearing an absent key is fine.
	require.NoError(t, Clear(ctx, kv, "current"))
}
