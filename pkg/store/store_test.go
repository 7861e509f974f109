package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_TypedAccessors(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemory(), "rating")

	t.Run("missing keys", func(t *testing.T) {
		_, found, err := s.GetString(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, found)

		_, found, err = s.GetBool(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, found)

		_, found, err = s.GetInt64(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("bool roundtrip", func(t *testing.T) {
		require.NoError(t, s.PutBool(ctx, "flag", true))
		val, found, err := s.GetBool(ctx, "flag")
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, val)
	})

	t.Run("int roundtrip", func(t *testing.T) {
		require.NoError(t, s.PutInt(ctx, "count", 42))
		val, found, err := s.GetInt(ctx, "count")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 42, val)
	})

	t.Run("int64 roundtrip", func(t *testing.T) {
		require.NoError(t, s.PutInt64(ctx, "millis", 1718409600000))
		val, found, err := s.GetInt64(ctx, "millis")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(1718409600000), val)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.PutString(ctx, "gone", "soon"))
		require.NoError(t, s.Delete(ctx, "gone"))
		_, found, err := s.GetString(ctx, "gone")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete missing is no-op", func(t *testing.T) {
		assert.NoError(t, s.Delete(ctx, "never-existed"))
	})

	t.Run("malformed stored value", func(t *testing.T) {
		require.NoError(t, s.PutString(ctx, "bad", "not-a-number"))
		_, _, err := s.GetInt64(ctx, "bad")
		require.Error(t, err)

		_, _, err = s.GetBool(ctx, "bad")
		require.Error(t, err)
	})
}

func TestStore_Namespacing(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	rating := New(backend, "rating")
	host := New(backend, "host")

	require.NoError(t, rating.PutInt(ctx, "count", 1))
	require.NoError(t, host.PutInt(ctx, "count", 2))

	val, _, err := rating.GetInt(ctx, "count")
	require.NoError(t, err)
	assert.Equal(t, 1, val, "namespaces keep same-named keys apart")

	val, _, err = host.GetInt(ctx, "count")
	require.NoError(t, err)
	assert.Equal(t, 2, val)

	// raw keys carry the namespace prefix
	raw, found, err := backend.Get(ctx, "rating/count")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1", raw)
}

func TestStore_EmptyNamespace(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()
	s := New(backend, "")

	require.NoError(t, s.PutString(ctx, "plain", "v"))
	raw, found, err := backend.Get(ctx, "plain")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", raw)
}
