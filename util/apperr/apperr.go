// Package apperr defines the error kinds every mutating operation can fail
// with. Controllers switch on KindOf to pick an HTTP status; services never
// fail silently.
package apperr

import "errors"

type Kind string

const (
	NotFound     Kind = "NOT_FOUND"
	Unauthorized Kind = "UNAUTHORIZED"
	InvalidState Kind = "INVALID_STATE"
	Validation   Kind = "VALIDATION_ERROR"
)

type kindError struct {
	kind Kind
	msg  string
}

func (e kindError) Error() string { return e.msg }
func (e kindError) Kind() Kind    { return e.kind }

func New(k Kind, msg string) error { return kindError{kind: k, msg: msg} }

// KindOf extracts the kind, "" for plain errors.
func KindOf(err error) Kind {
	var ke interface{ Kind() Kind }
	if errors.As(err, &ke) {
		return ke.Kind()
	}
	return ""
}

func NewNotFound(msg string) error     { return kindError{kind: NotFound, msg: msg} }
func NewUnauthorized(msg string) error { return kindError{kind: Unauthorized, msg: msg} }
func NewInvalidState(msg string) error { return kindError{kind: InvalidState, msg: msg} }
func NewValidation(msg string) error   { return kindError{kind: Validation, msg: msg} }
