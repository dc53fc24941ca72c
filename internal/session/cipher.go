package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var errSealedToken = errors.New("sealed token is corrupt or was sealed with another key")

// TokenCipher seals credentials with NaCl secretbox. Sealed values are
// base64(nonce || box).
type TokenCipher struct {
	key [32]byte
}

func NewTokenCipher(key []byte) (*TokenCipher, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("token cipher key must be 32 bytes, got %d", len(key))
	}
	c := &TokenCipher{}
	copy(c.key[:], key)
	return c, nil
}

func (c *TokenCipher) Seal(plain string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("token nonce: %w", err)
	}
	out := secretbox.Seal(nonce[:], []byte(plain), &nonce, &c.key)
	return base64.StdEncoding.EncodeToString(out), nil
}

func (c *TokenCipher) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize {
		return "", errSealedToken
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return "", errSealedToken
	}
	return string(plain), nil
}
