// Package tools defines the converter tools exposed to MCP clients and the
// registry they are served from.
package tools

import "fmt"

// Tool tool interface
type Tool interface {
	Name() string                                // Tool name
	Description() string                         // Tool description (for clients)
	Parameters() []ParameterDef                  // Parameter definitions
	Execute(args map[string]any) (string, error) // Execute
}

// ParameterDef parameter definition. Minimum/Maximum are published in the
// tool's input schema when set.
type ParameterDef struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"` // "string" | "number" | "boolean"
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Minimum     *float64 `json:"minimum,omitempty"`
	Maximum     *float64 `json:"maximum,omitempty"`
}

// bound is a shorthand for optional schema bounds.
func bound(v float64) *float64 { return &v }

// intArg reads a whole-number argument. JSON numbers decode as float64, so
// both float64 and int are accepted; fractional values are rejected.
func intArg(args map[string]any, name string) (int, error) {
	raw, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("missing required parameter: %s", name)
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("parameter %s must be a whole number, got %v", name, v)
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("parameter %s must be a number, got %T", name, raw)
	}
}

// stringArg reads a required non-empty string argument.
func stringArg(args map[string]any, name string) (string, error) {
	raw, ok := args[name]
	if !ok {
		return "", fmt.Errorf("missing required parameter: %s", name)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("parameter %s must be a string, got %T", name, raw)
	}
	if s == "" {
		return "", fmt.Errorf("parameter %s cannot be empty", name)
	}
	return s, nil
}
