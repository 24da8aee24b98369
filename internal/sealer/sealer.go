// Package sealer encrypts opaque bearer tokens into cookie-safe strings and
// back. Sealed values are URL-safe base64 (no padding) of
// nonce(12) || tag(16) || ciphertext, produced with AES-256-GCM.
package sealer

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

const (
	NonceSize = 12
	TagSize   = 16

	headerSize = NonceSize + TagSize
)

var encoding = base64.URLEncoding.Strict()

type Option func(*Sealer)

// WithRandom replaces the entropy source used for nonces.
func WithRandom(r io.Reader) Option {
	return func(s *Sealer) {
		s.random = r
	}
}

// WithExactKeyLength refuses secrets that would need the SHA-256 fallback.
func WithExactKeyLength() Option {
	return func(s *Sealer) {
		s.exactKeyLength = true
	}
}

// Sealer is safe for concurrent use. The key is derived on first use and
// never changes afterwards.
type Sealer struct {
	random         io.Reader
	exactKeyLength bool
	key            func() Key
}

func New(secret string, opts ...Option) (*Sealer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	s := &Sealer{random: rand.Reader}
	for _, opt := range opts {
		opt(s)
	}

	if s.exactKeyLength && len(secret) != KeySize {
		return nil, fmt.Errorf("%w: got %d", ErrSecretLength, len(secret))
	}

	s.key = sync.OnceValue(func() Key {
		return DeriveKey(secret)
	})

	return s, nil
}

// Key returns the derived cipher key.
func (s *Sealer) Key() Key {
	return s.key()
}

func (s *Sealer) aead() (cipher.AEAD, error) {
	key := s.Key()
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

// Seal encrypts token under a fresh random nonce. The only expected failure is
// an unavailable random source, reported as ErrEntropy.
func (s *Sealer) Seal(token string) (string, error) {
	return s.seal([]byte(token))
}

func (s *Sealer) seal(plaintext []byte) (string, error) {
	aead, err := s.aead()
	if err != nil {
		return "", fmt.Errorf("failed to initialize cipher: %w", err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(s.random, nonce); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	// crypto/cipher appends the tag after the ciphertext; the wire format
	// carries it in front.
	sealed := aead.Seal(nil, nonce, plaintext, nil)
	ciphertext, tag := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]

	out := make([]byte, 0, headerSize+len(ciphertext))
	out = append(out, nonce...)
	out = append(out, tag...)
	out = append(out, ciphertext...)

	return base64.RawURLEncoding.EncodeToString(out), nil
}

// Unseal reverses Seal. Any failure yields *SealError and no partial output.
func (s *Sealer) Unseal(value string) (string, error) {
	raw, err := decode(value)
	if err != nil || len(raw) < headerSize {
		return "", &SealError{}
	}

	nonce := raw[:NonceSize]
	tag := raw[NonceSize:headerSize]
	ciphertext := raw[headerSize:]

	aead, err := s.aead()
	if err != nil {
		return "", &SealError{}
	}

	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", &SealError{}
	}

	if !utf8.Valid(plaintext) {
		return "", &SealError{}
	}

	return string(plaintext), nil
}

func decode(value string) ([]byte, error) {
	if pad := len(value) % 4; pad != 0 {
		value += strings.Repeat("=", 4-pad)
	}

	return encoding.DecodeString(value)
}
