package quantity

import (
	"errors"
	"fmt"
)

// Error codes reported by quantity operations.
const (
	ErrCodeInexact      = "QUANTITY_INEXACT"
	ErrCodeOverflow     = "QUANTITY_OVERFLOW"
	ErrCodeDivideByZero = "QUANTITY_DIVIDE_BY_ZERO"
)

// Error describes a failed quantity operation.
type Error struct {
	Code    string
	Op      string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Message)
}

// IsInexact reports whether err is an integer conversion that would lose
// precision.
func IsInexact(err error) bool {
	var qe *Error
	return errors.As(err, &qe) && qe.Code == ErrCodeInexact
}

// IsOverflow reports whether err is an integer overflow.
func IsOverflow(err error) bool {
	var qe *Error
	return errors.As(err, &qe) && qe.Code == ErrCodeOverflow
}

// IsDivideByZero reports whether err is an integer division by zero.
func IsDivideByZero(err error) bool {
	var qe *Error
	return errors.As(err, &qe) && qe.Code == ErrCodeDivideByZero
}
