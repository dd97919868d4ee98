package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
)

// ToolDefinition is a tool the model may call: a name, a description the
// model uses to decide applicability, a JSON input schema, and the handler.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema anthropic.ToolInputSchemaParam
	Function    func(ctx context.Context, input json.RawMessage) (string, error)
}

// GenerateSchema derives a tool input schema from the JSON shape of T.
// Fields without omitempty are required.
func GenerateSchema[T any]() anthropic.ToolInputSchemaParam {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)

	var props any = map[string]any{}
	if schema.Properties != nil && schema.Properties.Len() > 0 {
		props = schema.Properties
	}
	return anthropic.ToolInputSchemaParam{
		Properties: props,
		Required:   schema.Required,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeInput unmarshals and validates tool arguments produced by the model.
// An empty payload decodes as {}.
func decodeInput[T any](tool string, input json.RawMessage) (T, error) {
	var in T
	if len(input) == 0 {
		input = json.RawMessage("{}")
	}
	if err := json.Unmarshal(input, &in); err != nil {
		return in, fmt.Errorf("invalid %s arguments: %w", tool, err)
	}
	if err := validate.Struct(in); err != nil {
		return in, fmt.Errorf("invalid %s arguments: %w", tool, err)
	}
	return in, nil
}
