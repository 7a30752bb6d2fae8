package apperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Kind classifies a request failure. Every failure a controller can surface
// is one of these kinds; the Echo boundary maps each kind to a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindValidation
)

// Error carries a failure kind, a human-readable message and, for
// validation failures, per-field errors.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Unauthenticated reports a missing or invalid credential where one is required.
func Unauthenticated(msg string) error {
	return &Error{Kind: KindUnauthenticated, Message: msg}
}

// Forbidden reports an authenticated caller attempting a write on content
// they do not own.
func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// NotFound reports an absent resource or parent resource.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Validation reports a malformed payload, optionally with field-level errors.
func Validation(msg string, fields map[string]string) error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

// Internal wraps an unexpected failure from a collaborator.
func Internal(err error) error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// KindOf extracts the kind of err, or KindInternal if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Status maps the error's kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Payload builds the response body: field errors for validation failures,
// otherwise the message.
func (e *Error) Payload() interface{} {
	if len(e.Fields) > 0 {
		body := echo.Map{}
		for field, msg := range e.Fields {
			body[field] = []string{msg}
		}
		return body
	}
	return e.Message
}

// EchoHTTPErrorHandler returns the boundary error handler: it converts
// *Error values to HTTP errors with the kind's status code and defers
// everything else to Echo's default handling.
func EchoHTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var appErr *Error
		if errors.As(err, &appErr) {
			err = echo.NewHTTPError(appErr.Status(), appErr.Payload())
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
