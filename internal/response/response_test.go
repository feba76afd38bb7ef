package response

import (
	"encoding/json"
	"testing"

	"github.com/deppfellow/boardhub/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_OmitsEmptyData(t *testing.T) {
	body, err := json.Marshal(Success("Member deleted successfully"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":true,"message":"Member deleted successfully"}`, string(body))
}

func TestBuild_WithData(t *testing.T) {
	env := Build(true, "ok", map[string]int{"count": 2})

	assert.True(t, env.Success)
	assert.Equal(t, map[string]int{"count": 2}, env.Data)
}

func TestFailure(t *testing.T) {
	httpErr := errs.NewBadRequestError("id must be a number", nil, []errs.FieldError{{Field: "id", Error: "must be a number"}})

	body, err := json.Marshal(Failure(httpErr))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"success": false,
		"message": "id must be a number",
		"code": "BAD_REQUEST",
		"errors": [{"field": "id", "error": "must be a number"}]
	}`, string(body))
}
