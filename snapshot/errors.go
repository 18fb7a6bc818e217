package snapshot

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("snapshot: invalid input")

// InvalidInputError reports a generator input that was rejected at
// construction time. Op names the constructor, Reason the violated rule.
type InvalidInputError struct {
	Op     string
	Reason string
}

// Invalid builds an *InvalidInputError for op with a formatted reason.
func Invalid(op, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: invalid input: %s", e.Op, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) succeed.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
