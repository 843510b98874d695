// Package entities provides core data structures for wander-api.
package entities

import "math"

// NormalizedTolerance is the allowed drift when checking that a normalized
// stat vector sums to 1.0 (or a material delta sums to 0).
const NormalizedTolerance = 0.01

// Stats holds the four combat stats. Base item stats are normalized
// (components sum to 1.0); derived stats and material deltas are absolute.
type Stats struct {
	AtkPower    float64 `json:"atk_power"`
	AtkAccuracy float64 `json:"atk_accuracy"`
	DefPower    float64 `json:"def_power"`
	DefAccuracy float64 `json:"def_accuracy"`
}

// Add returns the component-wise sum of two stat vectors
func (s Stats) Add(o Stats) Stats {
	return Stats{
		AtkPower:    s.AtkPower + o.AtkPower,
		AtkAccuracy: s.AtkAccuracy + o.AtkAccuracy,
		DefPower:    s.DefPower + o.DefPower,
		DefAccuracy: s.DefAccuracy + o.DefAccuracy,
	}
}

// Scale returns the stat vector multiplied by a scalar
func (s Stats) Scale(f float64) Stats {
	return Stats{
		AtkPower:    s.AtkPower * f,
		AtkAccuracy: s.AtkAccuracy * f,
		DefPower:    s.DefPower * f,
		DefAccuracy: s.DefAccuracy * f,
	}
}

// Sum returns the scalar sum of all four components
func (s Stats) Sum() float64 {
	return s.AtkPower + s.AtkAccuracy + s.DefPower + s.DefAccuracy
}

// Rating is the combat rating: the scalar sum of the vector, used for
// relative power comparison.
func (s Stats) Rating() float64 {
	return s.Sum()
}

// Rounded returns the stat vector with each component rounded to 2 decimals
func (s Stats) Rounded() Stats {
	return Stats{
		AtkPower:    round2(s.AtkPower),
		AtkAccuracy: round2(s.AtkAccuracy),
		DefPower:    round2(s.DefPower),
		DefAccuracy: round2(s.DefAccuracy),
	}
}

// floatSlack absorbs accumulation error so values sitting exactly on the
// tolerance boundary are accepted.
const floatSlack = 1e-9

// IsNormalized reports whether the components sum to 1.0 within tolerance
func (s Stats) IsNormalized() bool {
	return math.Abs(s.Sum()-1.0) <= NormalizedTolerance+floatSlack
}

// IsBalancedDelta reports whether the components sum to 0 within tolerance.
// Material modifiers must satisfy this balance law.
func (s Stats) IsBalancedDelta() bool {
	return math.Abs(s.Sum()) <= NormalizedTolerance+floatSlack
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
