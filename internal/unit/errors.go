package unit

import (
	"errors"
	"fmt"
)

// Error represents a failed unit-algebra operation.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Unit is the symbol or composed form of the unit involved.
	Unit string

	// Message describes the failure.
	Message string
}

// ErrorCode categorizes unit-algebra errors.
type ErrorCode string

const (
	// ErrCodeRootUndefined indicates a root whose degree does not divide
	// every term power of the unit.
	ErrCodeRootUndefined ErrorCode = "UNIT_ROOT_UNDEFINED"

	// ErrCodeNoKind indicates a unit with no associated quantity kind
	// where one is required (derived units carry none).
	ErrCodeNoKind ErrorCode = "UNIT_WITHOUT_KIND"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Unit != "" {
		return fmt.Sprintf("%s: %s (unit=%s)", e.Code, e.Message, e.Unit)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsRootUndefined returns true if the error reports an impossible unit root.
// Uses errors.As to handle wrapped errors.
func IsRootUndefined(err error) bool {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Code == ErrCodeRootUndefined
	}
	return false
}

// IsNoKind returns true if the error reports a unit without a quantity kind.
func IsNoKind(err error) bool {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Code == ErrCodeNoKind
	}
	return false
}
