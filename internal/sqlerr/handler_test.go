package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/boardhub/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	return httpErr
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	in := errs.NewNotAcceptableError("Role does not exist")
	assert.Same(t, in, HandleError(in))
}

func TestHandleError_UniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert user: %w", &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "users",
		ConstraintName: "users_email_key",
	})

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
}

func TestHandleError_ForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", TableName: "board_members", ColumnName: "board_id"}

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "BOARD_MEMBER_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Board does not exist", httpErr.Message)
}

func TestHandleError_NotNullViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23502", TableName: "users", ColumnName: "email"}

	httpErr := asHTTPError(t, HandleError(err))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "email", httpErr.Errors[0].Field)
}

func TestHandleError_UnknownPgErrorCarriesText(t *testing.T) {
	err := &pgconn.PgError{Code: "57P01", Severity: "FATAL", Message: "terminating connection"}

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Contains(t, httpErr.Message, "terminating connection")
}

func TestHandleError_NoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleError_GenericError(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("dial tcp: connection refused")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "dial tcp: connection refused", httpErr.Message)
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23514", Severity: "ERROR"})
	assert.Equal(t, CheckViolation, ErrCode(fmt.Errorf("wrapped: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("board_members_pkey"))
}
