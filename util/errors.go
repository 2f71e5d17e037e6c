package util

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
	KindValidation
)

// AppError carries a failure kind that the HTTP layer maps to a status code.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return INTERNAL_SERVER_ERROR
}

func (e *AppError) Unwrap() error { return e.Err }

func NotFound(msg string) error     { return &AppError{Kind: KindNotFound, Message: msg} }
func Unauthorized(msg string) error { return &AppError{Kind: KindUnauthorized, Message: msg} }
func Forbidden(msg string) error    { return &AppError{Kind: KindForbidden, Message: msg} }
func Conflict(msg string) error     { return &AppError{Kind: KindConflict, Message: msg} }
func Validation(msg string) error   { return &AppError{Kind: KindValidation, Message: msg} }

func Internal(err error) error {
	return &AppError{Kind: KindInternal, Message: INTERNAL_SERVER_ERROR, Err: err}
}

func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

/*
* Map the kind of the error to the http status
* Anything that is not an AppError is an internal error
 */
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
