// Package cryptox implements encryption of stored secret fields (website and
// app passwords) with AES-GCM. The server encrypts on write and decrypts on
// read; ciphertext and nonce are persisted separately.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ndmitriev/memora/internal/common"
)

// ErrInvalidKeySize is returned when the configured key is not a valid AES
// key length.
var ErrInvalidKeySize = errors.New("encryption key must be 16, 24 or 32 bytes")

// ParseKey decodes a hex-encoded AES key from configuration.
func ParseKey(hexKey string) ([]byte, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key encoding: %w", err)
	}
	switch len(key) {
	case 16, 24, 32:
		return key, nil
	default:
		return nil, ErrInvalidKeySize
	}
}

// EncryptString encrypts plaintext with AES-GCM under key. A fresh random
// nonce is generated per call and returned alongside the ciphertext.
func EncryptString(plaintext string, key []byte) (ciphertext, nonce []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	ciphertext = aesgcm.Seal(nil, nonce, []byte(plaintext), nil)
	return ciphertext, nonce, nil
}

// DecryptString reverses EncryptString. Decryption fails if the ciphertext or
// nonce was tampered with.
func DecryptString(ciphertext, nonce, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
