package tasksrepobridge

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed task.schema.json
var taskSchemaJSON []byte

const taskSchemaURL = "https://taskd.local/schemas/task.schema.json"

// ErrNotObject is returned when a request body is valid JSON but not an object.
var ErrNotObject = errors.New("request body must be a JSON object")

var taskSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(taskSchemaURL, bytes.NewReader(taskSchemaJSON)); err != nil {
		return nil, fmt.Errorf("add task schema: %w", err)
	}
	return compiler.Compile(taskSchemaURL)
})

// validateBody checks a decoded JSON document against the task body schema.
func validateBody(doc any) error {
	schema, err := taskSchema()
	if err != nil {
		return fmt.Errorf("compile task schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return ErrNotObject
		}
		return err
	}
	return nil
}
