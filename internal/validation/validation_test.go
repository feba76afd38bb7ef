package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/boardhub/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type renamePayload struct {
	ID   string `param:"id" json:"-" validate:"required,number"`
	Name string `json:"name" validate:"required,min=3"`
	Tag  string `json:"tag"`
}

func (p *renamePayload) Validate() error {
	if err := Struct(p); err != nil {
		return err
	}
	if p.Tag == "reserved" {
		return CustomValidationErrors{{Field: "tag", Message: "is reserved"}}
	}
	return nil
}

func newContext(method, body, id string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/things/"+id, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/things/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func requireBadRequest(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidate_Success(t *testing.T) {
	p := &renamePayload{}
	err := BindAndValidate(newContext(http.MethodPut, `{"name":"roadmap"}`, "12"), p)

	require.NoError(t, err)
	assert.Equal(t, "12", p.ID)
	assert.Equal(t, "roadmap", p.Name)
}

func TestBindAndValidate_BodyCannotOverridePathID(t *testing.T) {
	p := &renamePayload{}
	err := BindAndValidate(newContext(http.MethodPut, `{"id":"99","name":"roadmap"}`, "12"), p)

	require.NoError(t, err)
	assert.Equal(t, "12", p.ID)
}

func TestBindAndValidate_FirstErrorBecomesMessage(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPut, `{"name":"x"}`, "abc"), &renamePayload{})

	httpErr := requireBadRequest(t, err)
	assert.Equal(t, "id must be a number", httpErr.Message)
	require.Len(t, httpErr.Errors, 2)
	assert.Equal(t, "name", httpErr.Errors[1].Field)
	assert.Equal(t, "must be at least 3 characters", httpErr.Errors[1].Error)
}

func TestBindAndValidate_Required(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPut, `{}`, "3"), &renamePayload{})

	httpErr := requireBadRequest(t, err)
	assert.Equal(t, "name is required", httpErr.Message)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPut, `{"name":"roadmap","tag":"reserved"}`, "3"), &renamePayload{})

	httpErr := requireBadRequest(t, err)
	assert.Equal(t, "tag is reserved", httpErr.Message)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPut, `{"name":`, "3"), &renamePayload{})

	httpErr := requireBadRequest(t, err)
	assert.NotEmpty(t, httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func newStrictContext(body string) echo.Context {
	e := echo.New()
	e.JSONSerializer = JSONSerializer{}
	req := httptest.NewRequest(http.MethodPut, "/things/3", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/things/:id")
	c.SetParamNames("id")
	c.SetParamValues("3")
	return c
}

func TestJSONSerializer_RejectsUnknownFields(t *testing.T) {
	err := BindAndValidate(newStrictContext(`{"name":"roadmap","extra":1}`), &renamePayload{})

	httpErr := requireBadRequest(t, err)
	assert.Equal(t, `"extra" is not allowed`, httpErr.Message)
}

func TestJSONSerializer_KnownFields(t *testing.T) {
	p := &renamePayload{}
	err := BindAndValidate(newStrictContext(`{"name":"roadmap","tag":"q3"}`), p)

	require.NoError(t, err)
	assert.Equal(t, "3", p.ID)
	assert.Equal(t, "q3", p.Tag)
}

func TestJSONSerializer_TypeMismatch(t *testing.T) {
	err := BindAndValidate(newStrictContext(`{"name":42}`), &renamePayload{})

	httpErr := requireBadRequest(t, err)
	assert.Equal(t, "name must be a string", httpErr.Message)
}
