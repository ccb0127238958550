package http

import (
	_ "embed"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yml
var openapiSpec []byte

// LoadOpenAPISpec parses and validates the embedded API contract.
func LoadOpenAPISpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	return doc, nil
}

// RegisterOpenAPIRoute serves the API contract as JSON so clients can
// discover the schema at runtime.
func RegisterOpenAPIRoute(e *echo.Echo, doc *openapi3.T) {
	e.GET("/api/v1/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
}
