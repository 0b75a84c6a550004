package causality

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// CommandResultSchema is the minimum shape a backend response must have
// before it is trusted. Responses missing any required field are
// discarded in favor of the local simulation.
const CommandResultSchema = `{
	"type": "object",
	"properties": {
		"action_id": {"type": "string"},
		"butterfly_index": {"type": "number"},
		"butterfly_effect": {"type": "object"},
		"echo_messages": {
			"type": "array",
			"items": {"type": "string"}
		},
		"is_paradox": {"type": "boolean"},
		"blocked": {"type": "boolean"},
		"reason": {"type": "string"}
	},
	"required": ["action_id", "butterfly_index", "butterfly_effect", "echo_messages"]
}`

var commandResultLoader = gojsonschema.NewStringLoader(CommandResultSchema)

// validateCommandResult checks raw response bytes against the required
// shape and decodes them. Returns an error on any schema or decode
// failure; the caller substitutes the mock result.
func validateCommandResult(raw []byte) (*CommandResult, error) {
	result, err := gojsonschema.Validate(commandResultLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return nil, fmt.Errorf("command result shape invalid: %v", errs)
	}

	var cr CommandResult
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, fmt.Errorf("command result decode failed: %w", err)
	}
	return &cr, nil
}
