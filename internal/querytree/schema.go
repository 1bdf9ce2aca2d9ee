package querytree

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

// querySchema is compiled once at init; the embedded schema is a build-time
// constant, so failure to compile is a programming error.
var querySchema = func() *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("querytree: compile embedded schema: %v", err))
	}
	return schema
}()

// validateSchema checks a raw query description against the embedded JSON
// Schema. Violations are reported as MalformedQuery naming the first failing
// field; the structural builder never sees documents the schema rejects.
func validateSchema(raw []byte) error {
	result, err := querySchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		// Loader errors mean the document is not valid JSON at all.
		return &MalformedQueryError{Path: "query", Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if result.Valid() {
		return nil
	}
	first := result.Errors()[0]
	return &MalformedQueryError{
		Path:    first.Field(),
		Message: first.Description(),
	}
}
