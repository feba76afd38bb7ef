package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// JSONSerializer is Echo's default JSON serializer with strict decoding:
// a request body carrying a key the payload does not declare is rejected
// with 400 `"<key>" is not allowed`.
type JSONSerializer struct {
	echo.DefaultJSONSerializer
}

const unknownFieldPrefix = "json: unknown field "

// Deserialize reads a JSON request body into i, refusing unknown keys.
func (JSONSerializer) Deserialize(c echo.Context, i any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(i)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("%s must be a %v", typeErr.Field, typeErr.Type)).SetInternal(err)
	case errors.As(err, &syntaxErr):
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Syntax error: offset=%v, error=%v", syntaxErr.Offset, syntaxErr.Error())).SetInternal(err)
	case strings.HasPrefix(err.Error(), unknownFieldPrefix):
		// encoding/json has no typed error for this case.
		field := strings.TrimPrefix(err.Error(), unknownFieldPrefix)
		return echo.NewHTTPError(http.StatusBadRequest, field+" is not allowed").SetInternal(err)
	}
	return err
}
