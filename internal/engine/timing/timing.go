// Package timing models the circular weapon dial: it derives the five
// hit-zone bands from a weapon pattern and the player's accuracy, and
// classifies a timed tap into a zone.
package timing

import (
	"github.com/wanderforge/wander-api/internal/entities"
	"github.com/wanderforge/wander-api/internal/errors"
	"github.com/wanderforge/wander-api/internal/pkg/rng"
)

// Zone is one of the five dial hit zones
type Zone string

// Hit zones in dial order
const (
	ZoneInjure Zone = "injure"
	ZoneMiss   Zone = "miss"
	ZoneGraze  Zone = "graze"
	ZoneNormal Zone = "normal"
	ZoneCrit   Zone = "crit"
)

// Damage multipliers per zone. Injure is negative: the player hurts
// themselves. Crit additionally rolls a bonus multiplier.
var zoneMultipliers = map[Zone]float64{
	ZoneInjure: -0.5,
	ZoneMiss:   0.0,
	ZoneGraze:  0.6,
	ZoneNormal: 1.0,
	ZoneCrit:   1.6,
}

// Multiplier returns the damage multiplier for a zone
func (z Zone) Multiplier() float64 {
	return zoneMultipliers[z]
}

// CritBonus rolls the extra crit multiplier, uniform in [0, 1)
func CritBonus(roller rng.Roller) float64 {
	return roller.Float64()
}

// DefaultPattern is the MVP single-arc weapon pattern: cumulative zone
// boundaries at 30, 80, 150, 280, and 360 degrees.
func DefaultPattern() entities.ZoneBands {
	return entities.ZoneBands{
		Injure: 3000,
		Miss:   5000,
		Graze:  7000,
		Normal: 13000,
		Crit:   8000,
	}
}

// AdjustedBands scales a base weapon pattern by player accuracy. Higher
// accuracy shrinks the three unfavorable zones (injure, miss, graze)
// proportionally and hands the freed width to normal and crit in proportion
// to their base widths. The shrink factor is 1/(1 + accuracy/100); negative
// accuracy is treated as zero. Crit takes whatever remains of the circle, so
// the adjusted widths always total the full dial exactly.
func AdjustedBands(base entities.ZoneBands, accuracy float64) (entities.ZoneBands, error) {
	if base.Total() != entities.CircleCentidegrees {
		return entities.ZoneBands{}, errors.InvalidArgumentf(
			"weapon pattern bands must total %d centidegrees, got %d",
			entities.CircleCentidegrees, base.Total())
	}
	if base.Injure < 0 || base.Miss < 0 || base.Graze < 0 || base.Normal < 0 || base.Crit < 0 {
		return entities.ZoneBands{}, errors.InvalidArgument("weapon pattern bands must be non-negative")
	}

	if accuracy < 0 {
		accuracy = 0
	}
	shrink := 1.0 / (1.0 + accuracy/100.0)

	adjusted := entities.ZoneBands{
		Injure: int(float64(base.Injure) * shrink),
		Miss:   int(float64(base.Miss) * shrink),
		Graze:  int(float64(base.Graze) * shrink),
	}

	freed := (base.Injure + base.Miss + base.Graze) -
		(adjusted.Injure + adjusted.Miss + adjusted.Graze)

	favorable := base.Normal + base.Crit
	if favorable > 0 {
		adjusted.Normal = base.Normal + freed*base.Normal/favorable
	}
	adjusted.Crit = entities.CircleCentidegrees -
		(adjusted.Injure + adjusted.Miss + adjusted.Graze + adjusted.Normal)

	return adjusted, nil
}

// DetermineHitZone classifies a tap angle into a zone. Zones are cumulative
// half-open intervals in dial order; a tap exactly on a boundary belongs to
// the zone that starts there.
func DetermineHitZone(tapDegree float64, bands entities.ZoneBands) (Zone, error) {
	if tapDegree < 0 || tapDegree >= 360 {
		return "", errors.InvalidArgumentf("tap degree must be in [0, 360), got %g", tapDegree)
	}

	tap := tapDegree * 100 // centidegrees

	boundary := float64(bands.Injure)
	if tap < boundary {
		return ZoneInjure, nil
	}
	boundary += float64(bands.Miss)
	if tap < boundary {
		return ZoneMiss, nil
	}
	boundary += float64(bands.Graze)
	if tap < boundary {
		return ZoneGraze, nil
	}
	boundary += float64(bands.Normal)
	if tap < boundary {
		return ZoneNormal, nil
	}
	return ZoneCrit, nil
}
