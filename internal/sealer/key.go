package sealer

import (
	"crypto/sha256"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

type Key [KeySize]byte

// DeriveKey turns a configured secret into a cipher key. A secret that is
// exactly KeySize bytes is used as-is, anything else is hashed with SHA-256.
func DeriveKey(secret string) Key {
	raw := []byte(secret)
	if len(raw) == KeySize {
		var key Key
		copy(key[:], raw)
		return key
	}

	return Key(sha256.Sum256(raw))
}
