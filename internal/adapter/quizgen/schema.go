package quizgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const questionListSchemaURL = "schema://generated-questions.json"

// questionListSchema describes the array the model is asked to return.
// Option labels are not required individually; a missing label becomes an
// empty cell when flattened. Option and justification values may be any
// scalar and are kept as text.
const questionListSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["question", "options", "answer", "explanation", "justification"],
    "properties": {
      "question": {"type": "string"},
      "options": {
        "type": "object",
        "additionalProperties": {"type": ["string", "number", "boolean"]}
      },
      "answer": {"type": "string"},
      "explanation": {"type": "string"},
      "justification": {
        "type": "object",
        "additionalProperties": {"type": ["string", "number", "boolean"]}
      }
    }
  }
}`

var (
	compiledSchema     *jsonschema.Schema
	compiledSchemaErr  error
	compiledSchemaOnce sync.Once
)

// questionSchema returns the compiled question list schema.
func questionSchema() (*jsonschema.Schema, error) {
	compiledSchemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(questionListSchema), &doc); err != nil {
			compiledSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(questionListSchemaURL, doc); err != nil {
			compiledSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = c.Compile(questionListSchemaURL)
	})
	return compiledSchema, compiledSchemaErr
}
