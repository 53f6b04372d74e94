package ratio

import (
	"errors"
	"fmt"
)

// ArithmeticError represents a failed ratio computation.
//
// Ratio arithmetic fails in exactly three ways:
//   - Overflow: an intermediate sum or product leaves the int64 range
//   - Zero denominator: construction with den == 0
//   - Zero inversion: inverse (or negative power) of a zero ratio
//
// The error carries the operation name and operands for diagnostics.
type ArithmeticError struct {
	// Code identifies the error category.
	Code ArithmeticErrorCode

	// Op is the operation that failed ("add", "mul", "pow", ...).
	Op string

	// Detail is a human-readable description.
	Detail string
}

// ArithmeticErrorCode categorizes ratio arithmetic errors.
type ArithmeticErrorCode string

const (
	// ErrCodeOverflow indicates an intermediate value left the int64 range.
	ErrCodeOverflow ArithmeticErrorCode = "RATIO_OVERFLOW"

	// ErrCodeZeroDenominator indicates construction with a zero denominator.
	ErrCodeZeroDenominator ArithmeticErrorCode = "ZERO_DENOMINATOR"

	// ErrCodeZeroInversion indicates inversion of a zero ratio.
	ErrCodeZeroInversion ArithmeticErrorCode = "ZERO_INVERSION"
)

// Error implements the error interface.
func (e *ArithmeticError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// IsOverflow returns true if the error is a ratio overflow.
// Uses errors.As to handle wrapped errors.
func IsOverflow(err error) bool {
	var ae *ArithmeticError
	if errors.As(err, &ae) {
		return ae.Code == ErrCodeOverflow
	}
	return false
}

// IsZeroDenominator returns true if the error is a zero-denominator error.
func IsZeroDenominator(err error) bool {
	var ae *ArithmeticError
	if errors.As(err, &ae) {
		return ae.Code == ErrCodeZeroDenominator
	}
	return false
}

// IsZeroInversion returns true if the error is a zero-inversion error.
func IsZeroInversion(err error) bool {
	var ae *ArithmeticError
	if errors.As(err, &ae) {
		return ae.Code == ErrCodeZeroInversion
	}
	return false
}

func overflowError(op, detail string) *ArithmeticError {
	return &ArithmeticError{Code: ErrCodeOverflow, Op: op, Detail: detail}
}
