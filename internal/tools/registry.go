package tools

import (
	"fmt"
	"sync"

	"github.com/wattwise/wattwise/internal/query"
)

// Registry tool registry
type Registry struct {
	tools map[string]Tool
	names []string // registration order, used for stable listings
	mu    sync.RWMutex
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register registers a tool
func (r *Registry) Register(tool Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %s already exists", name)
	}

	r.tools[name] = tool
	r.names = append(r.names, name)
	return nil
}

// Get gets a tool by name
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	return tool, exists
}

// List lists all tools in registration order
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]Tool, 0, len(r.tools))
	for _, name := range r.names {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Execute executes a tool by name
func (r *Registry) Execute(name string, args map[string]any) (string, error) {
	tool, exists := r.Get(name)
	if !exists {
		return "", fmt.Errorf("tool not found: %s", name)
	}
	return tool.Execute(args)
}

// Definition is the metadata advertised for a tool over MCP.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Definitions returns the advertised metadata for every registered tool, in
// registration order.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.tools))
	for _, name := range r.names {
		tool := r.tools[name]
		defs = append(defs, Definition{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: buildParameterSchema(tool.Parameters()),
		})
	}
	return defs
}

// buildParameterSchema builds a JSON Schema object for a parameter list
func buildParameterSchema(params []ParameterDef) map[string]any {
	properties := make(map[string]any)
	required := make([]string, 0)

	for _, param := range params {
		prop := map[string]any{
			"type":        param.Type,
			"description": param.Description,
		}
		if param.Minimum != nil {
			prop["minimum"] = *param.Minimum
		}
		if param.Maximum != nil {
			prop["maximum"] = *param.Maximum
		}
		properties[param.Name] = prop
		if param.Required {
			required = append(required, param.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}

	if len(required) > 0 {
		schema["required"] = required
	}

	return schema
}

// NewDefaultRegistry creates and registers both converter tools
func NewDefaultRegistry(interp *query.Interpreter) *Registry {
	registry := NewRegistry()

	tools := []Tool{
		NewConvertTimeTool(),
		NewConvertQueryTool(interp),
	}

	for _, tool := range tools {
		_ = registry.Register(tool) // Tool names are fixed and cannot conflict
	}

	return registry
}
