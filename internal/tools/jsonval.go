package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// JSONValidator checks whether a string is valid JSON. Invalid input is a
// normal result, not a tool error, so the model sees the parse message.
type JSONValidator struct{}

func (j *JSONValidator) Name() string { return "json_validator" }

func (j *JSONValidator) Description() string {
	return "Validate a JSON document and report whether it parses"
}

func (j *JSONValidator) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The JSON document to validate",
			},
		},
		"required":             []string{"text"},
		"additionalProperties": false,
	}
}

func (j *JSONValidator) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing json_validator input: %w", err)
	}

	var parsed any
	if err := json.Unmarshal([]byte(args.Text), &parsed); err != nil {
		return marshalResult(map[string]any{
			"valid": false,
			"error": err.Error(),
		})
	}

	return marshalResult(map[string]any{
		"valid": true,
		"type":  jsonTypeName(parsed),
	})
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return "null"
	}
}
