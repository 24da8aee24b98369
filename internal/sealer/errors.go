package sealer

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySecret  = errors.New("sealer: secret must not be empty")
	ErrSecretLength = fmt.Errorf("sealer: secret must be exactly %d bytes", KeySize)
	ErrEntropy      = errors.New("sealer: random source unavailable")
)

// SealError is returned for every value that cannot be unsealed. Malformed
// encoding, truncation and authentication failures all look the same to the
// caller.
type SealError struct{}

func (e *SealError) Error() string {
	return "sealer: invalid sealed value"
}
