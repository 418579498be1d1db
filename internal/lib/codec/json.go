// Package codec plugs goccy/go-json into echo.
//
// It replaces echo.DefaultJSONSerializer so request binding and c.JSON
// responses share one encoder.
package codec

import (
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// JSONSerializer implements echo.JSONSerializer using goccy/go-json.
type JSONSerializer struct{}

// Serialize writes i to the response. indent is set by echo in debug mode
// or when the request carries ?pretty.
func (JSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

// Deserialize decodes the request body into i. Decode failures are
// reported as 400 the same way echo's default serializer does.
//
// The body must hold exactly one JSON value: anything but whitespace after
// it is a syntax error, so the whole body is read and unmarshalled at once.
func (JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body").SetInternal(err)
	}

	err = json.Unmarshal(body, i)
	if err == nil {
		return nil
	}

	if ute, ok := err.(*json.UnmarshalTypeError); ok {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Unmarshal type error: expected=%v, got=%v, field=%v, offset=%v", ute.Type, ute.Value, ute.Field, ute.Offset),
		).SetInternal(err)
	}
	if se, ok := err.(*json.SyntaxError); ok {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Syntax error: offset=%v, error=%v", se.Offset, se.Error()),
		).SetInternal(err)
	}

	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}
