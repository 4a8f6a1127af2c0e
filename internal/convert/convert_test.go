package convert

import (
	"math"
	"strings"
	"testing"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		minutes, seconds int
		want             string
	}{
		{0, 5, "5s"},
		{2, 0, "2m 0s"},
		{2, 51, "2m 51s"},
		{0, 0, "0s"},
		{61, 30, "61m 30s"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.minutes, tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%d, %d) = %q, want %q", tt.minutes, tt.seconds, got, tt.want)
		}
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name             string
		ow, tw, min, sec int
		wantTotal        int
		wantFormatted    string
	}{
		{"weaker target", 1000, 700, 2, 0, 171, "2m 51s"},
		{"stronger target", 800, 1200, 3, 30, 140, "2m 20s"},
		{"seconds only result", 1000, 700, 0, 10, 14, "14s"},
		{"long cook can exceed an hour", 2000, 100, 4, 0, 4800, "80m 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Convert(tt.ow, tt.tw, tt.min, tt.sec)
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if result.ConvertedTime.TotalSeconds != tt.wantTotal {
				t.Errorf("total seconds = %d, want %d", result.ConvertedTime.TotalSeconds, tt.wantTotal)
			}
			if result.ConvertedTime.Formatted != tt.wantFormatted {
				t.Errorf("formatted = %q, want %q", result.ConvertedTime.Formatted, tt.wantFormatted)
			}
			if result.ConvertedTime.Minutes*60+result.ConvertedTime.Seconds != result.ConvertedTime.TotalSeconds {
				t.Error("minutes/seconds do not add up to total seconds")
			}
		})
	}
}

func TestConvertFormula(t *testing.T) {
	// The exact rounding contract: round half away from zero.
	cases := []struct{ ow, tw, min, sec int }{
		{1000, 700, 2, 0},
		{800, 1200, 3, 30},
		{950, 700, 5, 0},
		{100, 2000, 60, 59},
		{1100, 900, 1, 1},
	}
	for _, c := range cases {
		result, err := Convert(c.ow, c.tw, c.min, c.sec)
		if err != nil {
			t.Fatalf("Convert(%d, %d, %d, %d) failed: %v", c.ow, c.tw, c.min, c.sec, err)
		}
		want := int(math.Round(float64(c.min*60+c.sec) * float64(c.ow) / float64(c.tw)))
		if result.ConvertedTime.TotalSeconds != want {
			t.Errorf("Convert(%d, %d, %d, %d) total = %d, want %d",
				c.ow, c.tw, c.min, c.sec, result.ConvertedTime.TotalSeconds, want)
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	// Rounding is lossy but a double round trip should stay within 1 second.
	pairs := []struct{ ow, tw int }{
		{1000, 700},
		{800, 1200},
		{950, 700},
		{1200, 1100},
	}
	for _, p := range pairs {
		there, err := Convert(p.ow, p.tw, 2, 30)
		if err != nil {
			t.Fatalf("forward conversion failed: %v", err)
		}
		back, err := Convert(p.tw, p.ow, there.ConvertedTime.Minutes, there.ConvertedTime.Seconds)
		if err != nil {
			t.Fatalf("reverse conversion failed: %v", err)
		}
		diff := back.ConvertedTime.TotalSeconds - 150
		if diff < -1 || diff > 1 {
			t.Errorf("%d->%d->%d round trip drifted %ds from 150s", p.ow, p.tw, p.ow, diff)
		}
	}
}

func TestConvertExplanation(t *testing.T) {
	result, err := Convert(1000, 700, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := "Cook for 2m 51s instead of 2m 0s when using a 700W microwave instead of 1000W"
	if result.Explanation != want {
		t.Errorf("explanation = %q, want %q", result.Explanation, want)
	}
	if result.Wattages.Ratio != 1.43 {
		t.Errorf("ratio = %v, want 1.43", result.Wattages.Ratio)
	}
}

func TestPowerRecommendation(t *testing.T) {
	tests := []struct {
		name      string
		ow, tw    int
		wantLevel string
		wantWord  string
	}{
		{"much more powerful target side", 1600, 1000, "70-80%", "lower power"},
		{"much less powerful", 600, 1000, "100%", "check frequently"},
		{"comparable", 1000, 900, "100%", "normal power"},
		{"ratio exactly on weak boundary", 700, 1000, "100%", "normal power"},
		{"ratio exactly on strong boundary", 1500, 1000, "100%", "normal power"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Convert(tt.ow, tt.tw, 2, 0)
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			rec := result.PowerRecommendation
			if rec.PowerLevel != tt.wantLevel {
				t.Errorf("power level = %q, want %q", rec.PowerLevel, tt.wantLevel)
			}
			if !strings.Contains(rec.Reason, tt.wantWord) {
				t.Errorf("reason %q does not mention %q", rec.Reason, tt.wantWord)
			}
		})
	}
}

func TestConvertRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name             string
		ow, tw, min, sec int
		wantMsg          string
	}{
		{"original wattage too low", 50, 700, 2, 0, "original wattage"},
		{"original wattage too high", 2500, 700, 2, 0, "original wattage"},
		{"target wattage too low", 1000, 99, 2, 0, "target wattage"},
		{"target wattage too high", 1000, 2001, 2, 0, "target wattage"},
		{"negative minutes", 1000, 700, -1, 0, "minutes"},
		{"minutes too high", 1000, 700, 61, 0, "minutes"},
		{"negative seconds", 1000, 700, 2, -1, "seconds"},
		{"seconds too high", 1000, 700, 2, 60, "seconds"},
		{"zero duration", 1000, 700, 0, 0, "greater than 0"},
		{"equal wattages", 900, 900, 2, 0, "nothing to convert"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.ow, tt.tw, tt.min, tt.sec)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}
