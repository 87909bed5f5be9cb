package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/mathdash/internal/progress"
)

const schemaURL = "schema://mathdash/progress.json"

// progressSchema describes the persisted document. Unknown keys are
// allowed; the stored level is ignored on load.
const progressSchema = `{
  "type": "object",
  "properties": {
    "student_name": {"type": "string"},
    "current_grade": {"type": "string"},
    "points": {"type": "integer", "minimum": 0},
    "level": {"type": "integer"},
    "daily_streak": {"type": "integer", "minimum": 0},
    "last_activity_date": {
      "oneOf": [
        {"type": "null"},
        {"$ref": "#/$defs/date"}
      ]
    },
    "daily_challenges_completed": {
      "type": ["array", "null"],
      "items": {"$ref": "#/$defs/date"}
    },
    "achievements": {
      "type": ["array", "null"],
      "items": {"type": "string"}
    },
    "points_history": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["date", "points_gained", "total_points"],
        "properties": {
          "date": {"$ref": "#/$defs/timestamp"},
          "points_gained": {"type": "integer"},
          "total_points": {"type": "integer", "minimum": 0}
        }
      }
    },
    "math_problems_completed": {
      "type": ["object", "null"],
      "additionalProperties": {"type": "integer", "minimum": 0}
    },
    "math_quiz_history": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["timestamp", "topic", "result"],
        "properties": {
          "timestamp": {"$ref": "#/$defs/timestamp"},
          "topic": {"type": "string"},
          "question_type": {"type": "string"},
          "result": {"enum": ["Correct", "Incorrect"]},
          "points": {"type": "integer", "minimum": 0},
          "session_id": {"type": "string"}
        }
      }
    }
  },
  "$defs": {
    "date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
    "timestamp": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}$"}
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// getCompiledSchema compiles the progress schema once.
func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(strings.NewReader(progressSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// decode validates raw against the progress schema and decodes it.
// Any failure wraps ErrCorrupt.
func decode(raw []byte) (*progress.Progress, error) {
	compiled, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile progress schema: %w", err)
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", ErrCorrupt, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: schema validation failed: %w", ErrCorrupt, err)
	}

	var p progress.Progress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return &p, nil
}

// encode renders p as the persisted document.
func encode(p *progress.Progress) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshal progress: %w", err)
	}
	return data, nil
}
