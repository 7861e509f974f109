package store

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEncrypted_KeyValidation(t *testing.T) {
	_, err := NewEncrypted(NewMemory(), []byte("too-short"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key length")

	_, err = NewEncrypted(NewMemory(), bytes.Repeat([]byte("k"), 32))
	assert.NoError(t, err)
}

func TestEncrypted_Roundtrip(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()
	enc, err := NewEncrypted(backend, bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)

	require.NoError(t, enc.Put(ctx, "secret", "sensitive value"))

	val, found, err := enc.Get(ctx, "secret")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "sensitive value", val)

	// raw stored value is ciphertext, not plaintext
	raw, found, err := backend.Get(ctx, "secret")
	require.NoError(t, err)
	assert.True(t, found)
	assert.NotEqual(t, "sensitive value", raw)
	assert.NotContains(t, raw, "sensitive")

	// identical plaintexts produce different ciphertexts, nonce is random
	require.NoError(t, enc.Put(ctx, "other", "sensitive value"))
	raw2, _, err := backend.Get(ctx, "other")
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
}

func TestEncrypted_MissingKey(t *testing.T) {
	enc, err := NewEncrypted(NewMemory(), bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)

	_, found, err := enc.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestEncrypted_WrongKey(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	enc, err := NewEncrypted(backend, bytes.Repeat([]byte("a"), 32))
	require.NoError(t, err)
	require.NoError(t, enc.Put(ctx, "secret", "value"))

	other, err := NewEncrypted(backend, bytes.Repeat([]byte("b"), 32))
	require.NoError(t, err)

	_, _, err = other.Get(ctx, "secret")
	require.Error(t, err, "wrong key must not decrypt")
	assert.Contains(t, err.Error(), "decrypt value")
}

func TestEncrypted_TamperedValue(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	enc, err := NewEncrypted(backend, bytes.Repeat([]byte("a"), 32))
	require.NoError(t, err)

	require.NoError(t, backend.Put(ctx, "garbage", "not-base64!!!"))
	_, _, err = enc.Get(ctx, "garbage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode value")

	require.NoError(t, backend.Put(ctx, "short", "YWJj")) // "abc", shorter than a nonce
	_, _, err = enc.Get(ctx, "short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestEncrypted_Delete(t *testing.T) {
	ctx := context.Background()
	enc, err := NewEncrypted(NewMemory(), bytes.Repeat([]byte("k"), 32))
	require.NoError(t, err)

	require.NoError(t, enc.Put(ctx, "secret", "value"))
	require.NoError(t, enc.Delete(ctx, "secret"))

	_, found, err := enc.Get(ctx, "secret")
	require.NoError(t, err)
	assert.False(t, found)
}
