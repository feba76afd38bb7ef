package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_ACCEPTABLE", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotAcceptable)))
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *HTTPError
		status int
		code   string
	}{
		{NewUnauthorizedError("no"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{NewForbiddenError("no"), http.StatusForbidden, "FORBIDDEN"},
		{NewBadRequestError("bad", nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{NewNotFoundError("gone", nil), http.StatusNotFound, "NOT_FOUND"},
		{NewNotAcceptableError("Role does not exist"), http.StatusNotAcceptable, "NOT_ACCEPTABLE"},
		{NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status)
		assert.Equal(t, tc.code, tc.err.Code)
	}
}

func TestNewBadRequestError_CustomCode(t *testing.T) {
	code := "MEMBER_NOT_FOUND"
	err := NewBadRequestError("missing", &code, []FieldError{{Field: "member", Error: "is required"}})

	assert.Equal(t, code, err.Code)
	assert.Len(t, err.Errors, 1)
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewNotAcceptableError("Role does not exist"))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "Role does not exist", httpErr.Error())
}

func TestHTTPError_WithMessage(t *testing.T) {
	base := NewInternalServerError()
	custom := base.WithMessage("connection refused")

	assert.Equal(t, "connection refused", custom.Message)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), base.Message)
	assert.Equal(t, base.Status, custom.Status)
}
