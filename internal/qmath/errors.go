package qmath

import (
	"errors"
	"fmt"
)

// Error codes reported by math operations.
const (
	ErrCodeDomain = "MATH_DOMAIN"
	ErrCodeRoot   = "MATH_ROOT_UNDEFINED"
)

// Error describes a failed math operation.
type Error struct {
	Code    string
	Fn      string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Fn, e.Message)
}

// IsDomainError reports whether err is an argument outside a function's
// mathematical domain.
func IsDomainError(err error) bool {
	var me *Error
	return errors.As(err, &me) && me.Code == ErrCodeDomain
}

// IsRootUndefined reports whether err means a root has no reference
// representation, such as the square root of a metre.
func IsRootUndefined(err error) bool {
	var me *Error
	return errors.As(err, &me) && me.Code == ErrCodeRoot
}
