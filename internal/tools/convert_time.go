package tools

import (
	"encoding/json"
	"fmt"

	"github.com/wattwise/wattwise/internal/convert"
)

// ConvertTimeTool converts a cooking time between wattages from four
// structured numeric parameters.
type ConvertTimeTool struct{}

// NewConvertTimeTool creates the structured conversion tool.
func NewConvertTimeTool() *ConvertTimeTool {
	return &ConvertTimeTool{}
}

func (t *ConvertTimeTool) Name() string {
	return "convert_microwave_time"
}

func (t *ConvertTimeTool) Description() string {
	return "Convert microwave cooking time from one wattage to another"
}

func (t *ConvertTimeTool) Parameters() []ParameterDef {
	return []ParameterDef{
		{
			Name:        "original_wattage",
			Type:        "number",
			Description: "The wattage specified in the recipe (watts)",
			Required:    true,
			Minimum:     bound(convert.MinWattage),
			Maximum:     bound(convert.MaxWattage),
		},
		{
			Name:        "target_wattage",
			Type:        "number",
			Description: "Your microwave's wattage (watts)",
			Required:    true,
			Minimum:     bound(convert.MinWattage),
			Maximum:     bound(convert.MaxWattage),
		},
		{
			Name:        "original_minutes",
			Type:        "number",
			Description: "Original cooking time in minutes",
			Required:    true,
			Minimum:     bound(0),
			Maximum:     bound(convert.MaxMinutes),
		},
		{
			Name:        "original_seconds",
			Type:        "number",
			Description: "Original cooking time in seconds",
			Required:    true,
			Minimum:     bound(0),
			Maximum:     bound(convert.MaxSeconds),
		},
	}
}

// Execute runs the conversion and returns the result payload as indented JSON.
func (t *ConvertTimeTool) Execute(args map[string]any) (string, error) {
	originalWattage, err := intArg(args, "original_wattage")
	if err != nil {
		return "", err
	}
	targetWattage, err := intArg(args, "target_wattage")
	if err != nil {
		return "", err
	}
	minutes, err := intArg(args, "original_minutes")
	if err != nil {
		return "", err
	}
	seconds, err := intArg(args, "original_seconds")
	if err != nil {
		return "", err
	}

	result, err := convert.Convert(originalWattage, targetWattage, minutes, seconds)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize result: %w", err)
	}
	return string(data), nil
}
