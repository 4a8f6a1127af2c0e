package tools

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	// Test registration
	tool := NewConvertTimeTool()
	err := registry.Register(tool)
	if err != nil {
		t.Fatalf("Failed to register tool: %v", err)
	}

	// Test duplicate registration
	err = registry.Register(tool)
	if err == nil {
		t.Error("Duplicate registration should return error")
	}

	// Test get
	got, exists := registry.Get("convert_microwave_time")
	if !exists {
		t.Error("Should be able to get registered tool")
	}
	if got.Name() != "convert_microwave_time" {
		t.Errorf("Tool name mismatch: expected convert_microwave_time, got %s", got.Name())
	}

	// Test get non-existent tool
	_, exists = registry.Get("not_exist")
	if exists {
		t.Error("Should not get unregistered tool")
	}

	// Test execute of unknown tool
	_, err = registry.Execute("not_exist", nil)
	if err == nil {
		t.Error("Executing unknown tool should return error")
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry := NewDefaultRegistry(nil)

	list := registry.List()
	if len(list) != 2 {
		t.Fatalf("Expected 2 default tools, got %d", len(list))
	}
	if list[0].Name() != "convert_microwave_time" {
		t.Errorf("First tool = %s, want convert_microwave_time", list[0].Name())
	}
	if list[1].Name() != "convert_microwave_time_from_text" {
		t.Errorf("Second tool = %s, want convert_microwave_time_from_text", list[1].Name())
	}
}

func TestDefinitions(t *testing.T) {
	registry := NewDefaultRegistry(nil)
	defs := registry.Definitions()
	if len(defs) != 2 {
		t.Fatalf("Expected 2 definitions, got %d", len(defs))
	}

	schema := defs[0].InputSchema
	if schema["type"] != "object" {
		t.Errorf("Schema type = %v, want object", schema["type"])
	}

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatal("Schema properties missing")
	}
	wattage, ok := props["original_wattage"].(map[string]any)
	if !ok {
		t.Fatal("original_wattage property missing")
	}
	if wattage["minimum"] != 100.0 {
		t.Errorf("original_wattage minimum = %v, want 100", wattage["minimum"])
	}
	if wattage["maximum"] != 2000.0 {
		t.Errorf("original_wattage maximum = %v, want 2000", wattage["maximum"])
	}

	required, ok := schema["required"].([]string)
	if !ok || len(required) != 4 {
		t.Errorf("Expected 4 required parameters, got %v", schema["required"])
	}
}

func TestConvertTimeTool(t *testing.T) {
	tool := NewConvertTimeTool()

	// JSON-decoded arguments arrive as float64.
	out, err := tool.Execute(map[string]any{
		"original_wattage": 1000.0,
		"target_wattage":   700.0,
		"original_minutes": 2.0,
		"original_seconds": 0.0,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("Result is not valid JSON: %v", err)
	}

	converted, ok := result["converted_time"].(map[string]any)
	if !ok {
		t.Fatal("converted_time missing from result")
	}
	if converted["total_seconds"] != 171.0 {
		t.Errorf("total_seconds = %v, want 171", converted["total_seconds"])
	}
	if converted["formatted"] != "2m 51s" {
		t.Errorf("formatted = %v, want 2m 51s", converted["formatted"])
	}

	rec, ok := result["power_recommendation"].(map[string]any)
	if !ok {
		t.Fatal("power_recommendation missing from result")
	}
	if rec["power_level"] != "100%" {
		t.Errorf("power_level = %v, want 100%%", rec["power_level"])
	}
}

func TestConvertTimeToolErrors(t *testing.T) {
	tool := NewConvertTimeTool()

	tests := []struct {
		name    string
		args    map[string]any
		wantMsg string
	}{
		{
			"missing parameter",
			map[string]any{"original_wattage": 1000.0},
			"missing required parameter",
		},
		{
			"wattage out of range",
			map[string]any{
				"original_wattage": 50.0,
				"target_wattage":   700.0,
				"original_minutes": 2.0,
				"original_seconds": 0.0,
			},
			"original wattage",
		},
		{
			"fractional minutes",
			map[string]any{
				"original_wattage": 1000.0,
				"target_wattage":   700.0,
				"original_minutes": 2.5,
				"original_seconds": 0.0,
			},
			"whole number",
		},
		{
			"non-numeric argument",
			map[string]any{
				"original_wattage": "lots",
				"target_wattage":   700.0,
				"original_minutes": 2.0,
				"original_seconds": 0.0,
			},
			"must be a number",
		},
		{
			"zero duration",
			map[string]any{
				"original_wattage": 1000.0,
				"target_wattage":   700.0,
				"original_minutes": 0.0,
				"original_seconds": 0.0,
			},
			"greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tool.Execute(tt.args)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestConvertQueryTool(t *testing.T) {
	tool := NewConvertQueryTool(nil)

	queryText := "my 700w microwave, recipe expects 950w, cook 5 minutes"
	out, err := tool.Execute(map[string]any{"query": queryText})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("Result is not valid JSON: %v", err)
	}

	if result["original_query"] != queryText {
		t.Errorf("original_query = %v, want the input text", result["original_query"])
	}

	params, ok := result["parsed_parameters"].(map[string]any)
	if !ok {
		t.Fatal("parsed_parameters missing from result")
	}
	if params["original_wattage"] != 950.0 {
		t.Errorf("original_wattage = %v, want 950", params["original_wattage"])
	}
	if params["target_wattage"] != 700.0 {
		t.Errorf("target_wattage = %v, want 700", params["target_wattage"])
	}
	if params["original_minutes"] != 5.0 {
		t.Errorf("original_minutes = %v, want 5", params["original_minutes"])
	}

	converted, ok := result["converted_time"].(map[string]any)
	if !ok {
		t.Fatal("converted_time missing from result")
	}
	// round(300 * 950 / 700) = 407 -> 6m 47s
	if converted["total_seconds"] != 407.0 {
		t.Errorf("total_seconds = %v, want 407", converted["total_seconds"])
	}
	if converted["formatted"] != "6m 47s" {
		t.Errorf("formatted = %v, want 6m 47s", converted["formatted"])
	}
}

func TestConvertQueryToolErrors(t *testing.T) {
	tool := NewConvertQueryTool(nil)

	tests := []struct {
		name    string
		args    map[string]any
		wantMsg string
	}{
		{"missing query", map[string]any{}, "missing required parameter"},
		{"empty query", map[string]any{"query": ""}, "cannot be empty"},
		{"non-string query", map[string]any{"query": 7.0}, "must be a string"},
		{
			"single wattage",
			map[string]any{"query": "something about 950w for 5 minutes"},
			"only one wattage found",
		},
		{
			"no cooking time",
			map[string]any{"query": "recipe expects 950w, my 700w microwave"},
			"cooking time not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tool.Execute(tt.args)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}
