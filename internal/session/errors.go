package session

import "fmt"

// Reason tells a caller why a request carries no usable session.
type Reason int

const (
	// ReasonMissing means the session cookie is absent or empty.
	ReasonMissing Reason = iota + 1
	// ReasonInvalid means the cookie is present but does not unseal.
	ReasonInvalid
)

func (r Reason) String() string {
	switch r {
	case ReasonMissing:
		return "missing"
	case ReasonInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Message is the client-facing explanation returned with a 401.
func (r Reason) Message() string {
	switch r {
	case ReasonMissing:
		return "Unauthorized: missing session (please login)"
	case ReasonInvalid:
		return "Unauthorized: invalid session (please logout and login again)"
	default:
		return "Unauthorized"
	}
}

type Error struct {
	Reason Reason
}

var (
	ErrMissing = &Error{Reason: ReasonMissing}
	ErrInvalid = &Error{Reason: ReasonInvalid}
)

func (e *Error) Error() string {
	return "session: " + e.Reason.String()
}

// Is matches any *Error with the same Reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Reason == e.Reason
}
