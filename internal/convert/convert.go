// Package convert holds the wattage conversion engine: a pure function from a
// validated (original wattage, target wattage, duration) triple to a converted
// duration with a power-level recommendation.
package convert

import (
	"fmt"
	"math"
)

// Valid input ranges. Wattages outside [MinWattage, MaxWattage] are rejected,
// as are minutes/seconds outside their fields.
const (
	MinWattage = 100
	MaxWattage = 2000
	MaxMinutes = 60
	MaxSeconds = 59
)

// Time is one cooking duration broken down for callers.
type Time struct {
	Minutes      int    `json:"minutes"`
	Seconds      int    `json:"seconds"`
	TotalSeconds int    `json:"total_seconds"`
	Formatted    string `json:"formatted"`
}

// Wattages pairs the two appliance powers with their display ratio.
// Ratio is original/target rounded to two decimal places; the conversion
// itself always uses the unrounded quotient.
type Wattages struct {
	Original int     `json:"original"`
	Target   int     `json:"target"`
	Ratio    float64 `json:"ratio"`
}

// PowerRecommendation suggests a power-level setting for the target appliance.
type PowerRecommendation struct {
	PowerLevel string `json:"power_level"`
	Reason     string `json:"reason"`
}

// Result is the full conversion payload returned to callers. Built once per
// request, never mutated.
type Result struct {
	ConvertedTime       Time                `json:"converted_time"`
	OriginalTime        Time                `json:"original_time"`
	Wattages            Wattages            `json:"wattages"`
	PowerRecommendation PowerRecommendation `json:"power_recommendation"`
	Explanation         string              `json:"explanation"`
}

// FormatTime renders a duration as "2m 51s", or just "5s" when there is no
// whole minute.
func FormatTime(minutes, seconds int) string {
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// Convert maps a cooking time written for originalWattage onto targetWattage.
//
// newTotalSeconds = round(originalTotalSeconds * originalWattage / targetWattage),
// rounding half away from zero (math.Round). The converted duration is not
// clamped; weak target appliances can legitimately push minutes past 60.
func Convert(originalWattage, targetWattage, minutes, seconds int) (*Result, error) {
	if originalWattage < MinWattage || originalWattage > MaxWattage {
		return nil, fmt.Errorf("original wattage must be between %d and %d watts, got %d", MinWattage, MaxWattage, originalWattage)
	}
	if targetWattage < MinWattage || targetWattage > MaxWattage {
		return nil, fmt.Errorf("target wattage must be between %d and %d watts, got %d", MinWattage, MaxWattage, targetWattage)
	}
	if minutes < 0 || minutes > MaxMinutes {
		return nil, fmt.Errorf("minutes must be between 0 and %d, got %d", MaxMinutes, minutes)
	}
	if seconds < 0 || seconds > MaxSeconds {
		return nil, fmt.Errorf("seconds must be between 0 and %d, got %d", MaxSeconds, seconds)
	}
	if originalWattage == targetWattage {
		return nil, fmt.Errorf("original and target wattage are both %dW; nothing to convert", originalWattage)
	}

	originalTotal := minutes*60 + seconds
	if originalTotal == 0 {
		return nil, fmt.Errorf("cooking time must be greater than 0 seconds")
	}

	ratio := float64(originalWattage) / float64(targetWattage)
	newTotal := int(math.Round(float64(originalTotal) * ratio))
	newMinutes := newTotal / 60
	newSeconds := newTotal % 60

	originalStr := FormatTime(minutes, seconds)
	newStr := FormatTime(newMinutes, newSeconds)

	return &Result{
		ConvertedTime: Time{
			Minutes:      newMinutes,
			Seconds:      newSeconds,
			TotalSeconds: newTotal,
			Formatted:    newStr,
		},
		OriginalTime: Time{
			Minutes:      minutes,
			Seconds:      seconds,
			TotalSeconds: originalTotal,
			Formatted:    originalStr,
		},
		Wattages: Wattages{
			Original: originalWattage,
			Target:   targetWattage,
			Ratio:    math.Round(ratio*100) / 100,
		},
		PowerRecommendation: recommendPowerLevel(ratio),
		Explanation: fmt.Sprintf("Cook for %s instead of %s when using a %dW microwave instead of %dW",
			newStr, originalStr, targetWattage, originalWattage),
	}, nil
}

// recommendPowerLevel derives the power tier from the unrounded ratio.
func recommendPowerLevel(ratio float64) PowerRecommendation {
	switch {
	case ratio > 1.5:
		return PowerRecommendation{
			PowerLevel: "70-80%",
			Reason:     "Your microwave is much more powerful. Consider using a lower power level.",
		}
	case ratio < 0.7:
		return PowerRecommendation{
			PowerLevel: "100%",
			Reason:     "Your microwave is less powerful. Use full power and check frequently.",
		}
	default:
		return PowerRecommendation{
			PowerLevel: "100%",
			Reason:     "Your microwave power is similar to the recipe. Use normal power.",
		}
	}
}
