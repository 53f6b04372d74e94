package point

import (
	"errors"
	"fmt"
)

// Error codes reported by point operations.
const (
	ErrCodeUnrelatedOrigins = "ORIGIN_UNRELATED"
	ErrCodeOriginMismatch   = "ORIGIN_MISMATCH"
)

// Error describes a failed point operation.
type Error struct {
	Code    string
	From    string
	To      string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s -> %s: %s", e.Code, e.From, e.To, e.Message)
}

// IsUnrelatedOrigins reports whether err means two origins have no
// ancestry between them and no offset can be derived.
func IsUnrelatedOrigins(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Code == ErrCodeUnrelatedOrigins
}

// IsOriginMismatch reports whether err means an operation required both
// points anchored to the same origin.
func IsOriginMismatch(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Code == ErrCodeOriginMismatch
}
