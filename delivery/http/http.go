package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dexroute/rcs/domain/json"
)

// DefaultClient represents default HTTP client for issuing outgoing HTTP requests.
var DefaultClient = &http.Client{
	Timeout:   5 * time.Second,
	Transport: otelhttp.NewTransport(http.DefaultTransport),
}

// RequestUnmarshaler is any type capable to unmarshal data from HTTP request to itself.
type RequestUnmarshaler interface {
	UnmarshalHTTPRequest(c echo.Context) error
}

// Validator is any type capable to validate and having Validate method attached.
type Validator interface {
	Validate() error
}

// UnmarshalRequest unmarshals HTTP request into m.
func UnmarshalRequest(c echo.Context, m RequestUnmarshaler) error {
	return m.UnmarshalHTTPRequest(c)
}

// ParseRequest encapsulates the request unmarshalling and validation logic.
// It unmarshals the request and validates it if the request implements the Validator interface.
func ParseRequest(c echo.Context, req RequestUnmarshaler) error {
	if err := UnmarshalRequest(c, req); err != nil {
		return err
	}

	v, ok := req.(Validator)
	if !ok {
		return nil
	}
	return v.Validate()
}

// JSONSerializer is an echo.JSONSerializer backed by the service JSON codec.
type JSONSerializer struct{}

var _ echo.JSONSerializer = JSONSerializer{}

// Serialize implements echo.JSONSerializer.
func (JSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	var (
		data []byte
		err  error
	)
	if indent != "" {
		data, err = json.MarshalIndent(i, "", indent)
	} else {
		data, err = json.Marshal(i)
	}
	if err != nil {
		return err
	}

	_, err = c.Response().Write(data)
	return err
}

// Deserialize implements echo.JSONSerializer.
func (JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	decoder := json.NewDecoder(c.Request().Body)
	if err := decoder.Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err)).SetInternal(err)
	}
	return nil
}
