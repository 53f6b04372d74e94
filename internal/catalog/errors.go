package catalog

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue/token"
)

// Registry error codes.
const (
	ErrCodeDuplicate     = "CATALOG_DUPLICATE"
	ErrCodeUnknownSpec   = "CATALOG_UNKNOWN_SPEC"
	ErrCodeUnknownUnit   = "CATALOG_UNKNOWN_UNIT"
	ErrCodeUnknownOrigin = "CATALOG_UNKNOWN_ORIGIN"
)

// Error describes a failed registry operation.
type Error struct {
	Code    string
	Name    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %q: %s", e.Code, e.Name, e.Message)
}

// IsDuplicate reports whether err is a name registered twice.
func IsDuplicate(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == ErrCodeDuplicate
}

// IsUnknownName reports whether err is a lookup of an undeclared spec,
// unit or origin.
func IsUnknownName(err error) bool {
	var ce *Error
	if !errors.As(err, &ce) {
		return false
	}
	switch ce.Code {
	case ErrCodeUnknownSpec, ErrCodeUnknownUnit, ErrCodeUnknownOrigin:
		return true
	}
	return false
}

// CompileError is a diagnostic from CUE declaration compilation, with
// the source position when CUE provides one.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
