// Package rules holds the error taxonomy shared by the access and lifecycle rule engines.
package rules

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	KindForbidden Kind = iota + 1
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is a deterministic rule rejection. Key is the i18n message key shown to the client.
type Error struct {
	Kind   Kind
	Key    string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func Forbidden(key, reason string) *Error {
	return &Error{Kind: KindForbidden, Key: key, Reason: reason}
}

func Invalid(key, reason string) *Error {
	return &Error{Kind: KindValidation, Key: key, Reason: reason}
}

func NotFound(key, reason string) *Error {
	return &Error{Kind: KindNotFound, Key: key, Reason: reason}
}

// KindOf reports the kind of a rule error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}
