package jobs

import "errors"

var errNonPositiveInterval = errors.New("job interval must be positive")

const (
	resultSuccess = "success"
	resultFailure = "failure"
)
