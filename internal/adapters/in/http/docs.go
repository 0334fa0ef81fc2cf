package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// openAPIDoc serves the embedded OpenAPI document to the swagger UI.
type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

var registerDocsOnce sync.Once

// registerDocs publishes swagger under swag's default instance name, which is the one
// echo-swagger reads. swag panics on a second registration, so only the first call
// takes effect.
func registerDocs(swagger *openapi3.T) error {
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal openapi document: %w", err)
	}

	registerDocsOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{doc: string(doc)})
	})
	return nil
}
