package query

import (
	"errors"
	"testing"
)

func TestInterpret(t *testing.T) {
	interp := New()

	tests := []struct {
		name string
		text string
		want Interpretation
	}{
		{
			"role cues resolve directly",
			"my 700w microwave, recipe expects 950w, cook 5 minutes",
			Interpretation{OriginalWattage: 950, TargetWattage: 700, Minutes: 5, Seconds: 0},
		},
		{
			"positional fallback keeps text order",
			"recipe 950w my 700w 5 minutes 30 seconds",
			Interpretation{OriginalWattage: 950, TargetWattage: 700, Minutes: 5, Seconds: 30},
		},
		{
			"bare pair falls back to position",
			"convert 950w to 700w for 2 minutes",
			Interpretation{OriginalWattage: 950, TargetWattage: 700, Minutes: 2, Seconds: 0},
		},
		{
			"mixed case input",
			"My 700W microwave, Recipe Expects 950W, cook 5 MINUTES",
			Interpretation{OriginalWattage: 950, TargetWattage: 700, Minutes: 5, Seconds: 0},
		},
		{
			"one tagged role plus a second mention",
			"recipe expects 950w, the other unit is 700w, 90 seconds",
			Interpretation{OriginalWattage: 950, TargetWattage: 700, Minutes: 1, Seconds: 30},
		},
		{
			"keyword proximity beats position",
			"i have the 700w one but the recipe wants 950w, 3 minutes",
			Interpretation{OriginalWattage: 950, TargetWattage: 700, Minutes: 3, Seconds: 0},
		},
		{
			"seconds only duration",
			"950w recipe, my 700w microwave, 45 seconds",
			Interpretation{OriginalWattage: 950, TargetWattage: 700, Minutes: 0, Seconds: 45},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interp.Interpret(tt.text)
			if err != nil {
				t.Fatalf("Interpret(%q) failed: %v", tt.text, err)
			}
			if *got != tt.want {
				t.Errorf("Interpret(%q) = %+v, want %+v", tt.text, *got, tt.want)
			}
		})
	}
}

func TestInterpretFailures(t *testing.T) {
	interp := New()

	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			"single untagged wattage",
			"something about 950w for 5 minutes",
			ErrOnlyOneWattage,
		},
		{
			"no wattage at all",
			"cook it for 5 minutes",
			ErrOriginalNotFound,
		},
		{
			"target missing after explicit original",
			"recipe expects 950w, cook 5 minutes",
			ErrTargetNotFound,
		},
		{
			"original missing after explicit target",
			"my 700w microwave needs 5 minutes",
			ErrOriginalNotFound,
		},
		{
			"no duration",
			"recipe expects 950w, my 700w microwave",
			ErrDurationNotFound,
		},
		{
			"same wattage for both roles",
			"recipe expects 950w and my 950w microwave, 5 minutes",
			ErrSameWattage,
		},
		{
			"more than two wattages",
			"950w or 800w or 700w, 5 minutes",
			ErrTooManyWattages,
		},
		{
			"out of range mentions do not count",
			"a 50w bulb and a 2500w heater for 5 minutes",
			ErrOriginalNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := interp.Interpret(tt.text)
			if err == nil {
				t.Fatalf("Interpret(%q) succeeded, want %v", tt.text, tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Interpret(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestInterpretCueWindowOption(t *testing.T) {
	// "recipe" sits 13 characters before the 950w mention: inside the default
	// window, outside a deliberately tiny one.
	text := "700w here; recipe needs it at 950w, 2 minutes"

	got, err := New().Interpret(text)
	if err != nil {
		t.Fatalf("default window failed: %v", err)
	}
	if got.OriginalWattage != 950 || got.TargetWattage != 700 {
		t.Errorf("default window got original=%d target=%d, want 950/700", got.OriginalWattage, got.TargetWattage)
	}

	narrow, err := New(WithCueWindow(4)).Interpret(text)
	if err != nil {
		t.Fatalf("narrow window failed: %v", err)
	}
	// The cue is out of reach, so the positional fallback takes over.
	if narrow.OriginalWattage != 700 || narrow.TargetWattage != 950 {
		t.Errorf("narrow window got original=%d target=%d, want 700/950", narrow.OriginalWattage, narrow.TargetWattage)
	}
}
