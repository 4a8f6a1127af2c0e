package tools

import (
	"encoding/json"
	"fmt"

	"github.com/wattwise/wattwise/internal/convert"
	"github.com/wattwise/wattwise/internal/query"
)

// ConvertQueryTool converts a cooking time described in a free-form English
// sentence, e.g. "recipe says 950w for 5 minutes but my microwave is 700w".
type ConvertQueryTool struct {
	interp *query.Interpreter
}

// NewConvertQueryTool creates the natural-language conversion tool. A nil
// interpreter gets the default configuration.
func NewConvertQueryTool(interp *query.Interpreter) *ConvertQueryTool {
	if interp == nil {
		interp = query.New()
	}
	return &ConvertQueryTool{interp: interp}
}

func (t *ConvertQueryTool) Name() string {
	return "convert_microwave_time_from_text"
}

func (t *ConvertQueryTool) Description() string {
	return "Convert microwave cooking time from a natural-language request that mentions both wattages and the cooking time"
}

func (t *ConvertQueryTool) Parameters() []ParameterDef {
	return []ParameterDef{
		{
			Name:        "query",
			Type:        "string",
			Description: `Free-form request, e.g. "my 700w microwave, recipe expects 950w, cook 5 minutes"`,
			Required:    true,
		},
	}
}

// queryResult extends the conversion payload with the raw query and the
// parameters the interpreter resolved, so callers can audit the reading.
type queryResult struct {
	convert.Result
	OriginalQuery    string           `json:"original_query"`
	ParsedParameters parsedParameters `json:"parsed_parameters"`
}

type parsedParameters struct {
	OriginalWattage int `json:"original_wattage"`
	TargetWattage   int `json:"target_wattage"`
	OriginalMinutes int `json:"original_minutes"`
	OriginalSeconds int `json:"original_seconds"`
}

// Execute interprets the query, runs the conversion, and returns the extended
// payload as indented JSON.
func (t *ConvertQueryTool) Execute(args map[string]any) (string, error) {
	text, err := stringArg(args, "query")
	if err != nil {
		return "", err
	}

	parsed, err := t.interp.Interpret(text)
	if err != nil {
		return "", err
	}

	result, err := convert.Convert(parsed.OriginalWattage, parsed.TargetWattage, parsed.Minutes, parsed.Seconds)
	if err != nil {
		return "", err
	}

	payload := queryResult{
		Result:        *result,
		OriginalQuery: text,
		ParsedParameters: parsedParameters{
			OriginalWattage: parsed.OriginalWattage,
			TargetWattage:   parsed.TargetWattage,
			OriginalMinutes: parsed.Minutes,
			OriginalSeconds: parsed.Seconds,
		},
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize result: %w", err)
	}
	return string(data), nil
}
