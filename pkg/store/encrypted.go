package store

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// Encrypted is a Backend decorator encrypting values with AES-256-GCM before
// they reach the underlying engine. Keys stay in the clear, values are stored
// as base64 with the random nonce prepended to the ciphertext.
type Encrypted struct {
	backend Backend
	gcm     cipher.AEAD
}

// NewEncrypted wraps a backend with value encryption, key must be 32 bytes
func NewEncrypted(backend Backend, key []byte) (*Encrypted, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("invalid key length: must be 32 bytes for AES-256, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	return &Encrypted{backend: backend, gcm: gcm}, nil
}

// Get retrieves and decrypts a value. A value that fails to decrypt (wrong
// key or tampered ciphertext) surfaces as an error.
func (e *Encrypted) Get(ctx context.Context, key string) (string, bool, error) {
	raw, found, err := e.backend.Get(ctx, key)
	if err != nil || !found {
		return "", found, err
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", false, fmt.Errorf("decode value for %q: %w", key, err)
	}
	if len(data) < e.gcm.NonceSize() {
		return "", false, fmt.Errorf("value for %q too short", key)
	}

	nonce, ciphertext := data[:e.gcm.NonceSize()], data[e.gcm.NonceSize():]
	plaintext, err := e.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", false, fmt.Errorf("decrypt value for %q: %w", key, err)
	}
	return string(plaintext), true, nil
}

// Put encrypts and stores a value
func (e *Encrypted) Put(ctx context.Context, key, value string) error {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	// nonce is prepended to ciphertext for decryption
	ciphertext := e.gcm.Seal(nonce, nonce, []byte(value), nil)
	return e.backend.Put(ctx, key, base64.StdEncoding.EncodeToString(ciphertext))
}

// Delete removes a value
func (e *Encrypted) Delete(ctx context.Context, key string) error {
	return e.backend.Delete(ctx, key)
}

// Close closes the underlying backend
func (e *Encrypted) Close() error {
	return e.backend.Close()
}
