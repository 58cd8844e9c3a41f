package ingest

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

const bankSchemaURL = "schema://question-bank.json"

// bankSchema accepts any object whose questions field is an array of
// objects. Other fields are carried through untouched.
const bankSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "items": {"type": "object"}
    },
    "questionTypes": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(bankSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(bankSchemaURL)
	})
	return compiledSchema, compileErr
}

// ParseJSON decodes a JSON bank document. Syntax errors and field type
// mismatches are ErrParseFailure; a document without an array-valued
// questions field is ErrInvalidSchema. Questions without a usable id are
// given one.
func ParseJSON(data []byte) (*questionbank.QuestionBank, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	var bank questionbank.QuestionBank
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	bank.FillMissingIDs()
	bank.EnsureTypes()
	return &bank, nil
}
