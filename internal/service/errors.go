package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure for the HTTP boundary.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a classified failure. Anything that is not an *Error is an internal failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func ValidationError(msg string) error   { return &Error{Kind: KindValidation, Message: msg} }
func ConflictError(msg string) error     { return &Error{Kind: KindConflict, Message: msg} }
func NotFoundError(msg string) error     { return &Error{Kind: KindNotFound, Message: msg} }
func UnauthorizedError(msg string) error { return &Error{Kind: KindUnauthorized, Message: msg} }

// KindOf returns the kind of a classified error, or 0 for internal failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err is a classified error of kind k.
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}
