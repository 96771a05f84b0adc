// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

// CipherPrefix marks values produced by [NameCipher.Encrypt]. Stored values
// without it are treated as plaintext.
const CipherPrefix = "enc:v1:"

var (
	// ErrEmptyKey is returned when the cipher is built without a secret.
	ErrEmptyKey = errors.New("encryption key is empty")

	// ErrCorruptCiphertext is returned when a prefixed value cannot be
	// decoded or fails authentication.
	ErrCorruptCiphertext = errors.New("corrupt ciphertext")
)

// NameCipher encrypts item names with AES-256-GCM.
//
// The key is SHA-256 of the configured secret. Output format:
// "enc:v1:" + base64(nonce ‖ ciphertext).
type NameCipher struct {
	aead cipher.AEAD
}

var _ FieldCipher = (*NameCipher)(nil)

// NewNameCipher derives the AES key from secret.
func NewNameCipher(secret string) (*NameCipher, error) {
	if secret == "" {
		return nil, ErrEmptyKey
	}

	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &NameCipher{aead: gcm}, nil
}

// Encrypt seals plaintext under a fresh random nonce.
func (c *NameCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return CipherPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt opens a value produced by Encrypt. Values without
// [CipherPrefix] are returned as they are.
func (c *NameCipher) Decrypt(stored string) (string, error) {
	encoded, ok := strings.CutPrefix(stored, CipherPrefix)
	if !ok {
		return stored, nil
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptCiphertext, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: too short", ErrCorruptCiphertext)
	}

	plaintext, err := c.aead.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptCiphertext, err)
	}
	return string(plaintext), nil
}
