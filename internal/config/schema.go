package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaJSON is the contract for user-supplied configuration files: all three
// fields required, name and version non-empty strings, features a list of
// strings. Unknown fields are deliberately left unconstrained.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "version", "features"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "version": {"type": "string", "minLength": 1},
    "features": {"type": "array", "items": {"type": "string"}}
  }
}`

// compileSchema compiles the embedded schema once per process.
var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.schema.json", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("config.schema.json")
})

// validate checks a decoded configuration document against the schema.
// Violations surface as parse errors to the caller.
func validate(doc any) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nil
}
