package combat

import (
	"math"

	cfg "github.com/automoto/boink/config"
	"github.com/jakecoffman/cp"
)

// Rand is the source of crit rolls. *rand.Rand from math/rand/v2 satisfies
// it; tests script it.
type Rand interface {
	Float64() float64
}

// ImpactSpeeds returns how hard each side was hit along the contact normal n,
// which points from A to B. A is hit by B's velocity towards A, B by A's
// velocity towards B. Motion away from the other side counts as zero.
func ImpactSpeeds(n, vA, vB cp.Vector) (onA, onB float64) {
	onA = max(0, vB.Dot(n.Neg()))
	onB = max(0, vA.Dot(n))
	return onA, onB
}

// CritChance grows linearly with impact speed from the base chance and is
// capped at certainty.
func CritChance(speed float64) float64 {
	return min(1, cfg.Combat.BaseCritChance+speed*cfg.Combat.CritScale)
}

// RollCrit draws once from rng.
func RollCrit(rng Rand, speed float64) bool {
	return rng.Float64() < CritChance(speed)
}

// Damage converts an impact speed into whole health points.
func Damage(speed float64, crit bool) int {
	dmg := int(math.Floor(speed / cfg.Combat.SpeedPerDamage))
	if crit {
		dmg *= cfg.Combat.CritMultiplier
	}
	return dmg
}

// BreakTie handles a collision that would eliminate both sides. The side that
// would end up less far below zero survives: its incoming damage is voided.
// Equal tentative health keeps both eliminations.
func BreakTie(healthA, dmgA, healthB, dmgB int) (int, int) {
	tentA, tentB := healthA-dmgA, healthB-dmgB
	if tentA > 0 || tentB > 0 {
		return dmgA, dmgB
	}
	switch {
	case tentA > tentB:
		return 0, dmgB
	case tentB > tentA:
		return dmgA, 0
	}
	return dmgA, dmgB
}
