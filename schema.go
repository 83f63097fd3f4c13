package llmwire

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
)

// GenerateSchema reflects T into the JSON schema shape the function-calling
// API expects: inlined definitions, no additional properties.
func GenerateSchema[T any]() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// ToolDef builds a function tool whose parameter schema is reflected from T.
// Field names and jsonschema struct tags on T drive the schema.
func ToolDef[T any](name, description string) openai.ChatCompletionToolParam {
	// Reflection output is always a marshalable JSON object.
	raw, _ := json.Marshal(GenerateSchema[T]())
	parameters := openai.FunctionParameters{}
	_ = json.Unmarshal(raw, &parameters)
	return openai.ChatCompletionToolParam{
		Type: openai.F(openai.ChatCompletionToolTypeFunction),
		Function: openai.F(openai.FunctionDefinitionParam{
			Name:        openai.F(name),
			Description: openai.F(description),
			Parameters:  openai.F(parameters),
		}),
	}
}
