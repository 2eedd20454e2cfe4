package pdfgen

import (
	"context"
	"errors"

	errorslib "github.com/goliatone/go-errors"
)

// ErrorKind defines generator error kinds.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindIO         ErrorKind = "io"
	KindLayout     ErrorKind = "layout"
	KindTimeout    ErrorKind = "timeout"
	KindCanceled   ErrorKind = "canceled"
	KindInternal   ErrorKind = "internal"
)

// GenError wraps errors with a kind.
type GenError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *GenError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *GenError) Unwrap() error {
	return e.Err
}

// NewError creates a new generator error.
func NewError(kind ErrorKind, msg string, err error) *GenError {
	return &GenError{Kind: kind, Msg: msg, Err: err}
}

// AsGoError maps an error into a go-errors error. The original error stays
// reachable through Unwrap, so KindFromError and errors.Is still see it.
func AsGoError(err error) *errorslib.Error {
	if err == nil {
		return nil
	}

	var ge *errorslib.Error
	if errors.As(err, &ge) {
		return ge
	}

	kind := KindFromError(err)
	msg := err.Error()

	var genErr *GenError
	if errors.As(err, &genErr) && genErr.Msg != "" {
		msg = genErr.Msg
	}

	category := errorslib.CategoryOperation
	switch kind {
	case KindValidation:
		category = errorslib.CategoryValidation
	case KindIO, KindLayout, KindTimeout, KindCanceled:
	default:
		category = errorslib.CategoryInternal
		kind = KindInternal
	}
	return errorslib.Wrap(err, category, msg).WithTextCode(string(kind))
}

// KindFromError maps an error to its generator error kind.
func KindFromError(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var genErr *GenError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return KindCanceled
	}

	return KindInternal
}

// IsIO reports whether err is an output failure.
func IsIO(err error) bool {
	return KindFromError(err) == KindIO
}

// IsLayout reports whether err was raised while laying out the document.
func IsLayout(err error) bool {
	return KindFromError(err) == KindLayout
}

func contextError(err error) *GenError {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(KindTimeout, "pdf render timed out", err)
	}
	return NewError(KindCanceled, "pdf render canceled", err)
}
