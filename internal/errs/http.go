package errs

import (
	"net/http"
)

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    statusCode(status),
		Message: message,
		Status:  status,
	}
}

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
func NewUnauthorizedError(message string) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, message)
}

// NewForbiddenError creates a 403 Forbidden HTTPError.
func NewForbiddenError(message string) *HTTPError {
	return newHTTPError(http.StatusForbidden, message)
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code overrides the default "BAD_REQUEST" when non-nil; errors carries
// field-level validation failures.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	err := newHTTPError(http.StatusBadRequest, message)
	if code != nil {
		err.Code = *code
	}
	err.Errors = errors
	return err
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	err := newHTTPError(http.StatusNotFound, message)
	if code != nil {
		err.Code = *code
	}
	return err
}

// NewNotAcceptableError creates a 406 Not Acceptable HTTPError. It is used
// for values that pass shape validation but are rejected by a domain rule.
func NewNotAcceptableError(message string) *HTTPError {
	return newHTTPError(http.StatusNotAcceptable, message)
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError creates a 500 HTTPError carrying the generic status text.
// Use WithMessage to expose the underlying error text.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), nil, nil)
}
