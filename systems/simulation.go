package systems

import (
	cfg "github.com/automoto/boink/config"
	"github.com/automoto/boink/round"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// frameDelta is the simulated time advanced per Update.
func frameDelta() float64 {
	return round.FrameDelta(ebiten.TPS(), cfg.Arena.FPS)
}

// UpdatePhysics steps the space; collisions are resolved inside the step.
func UpdatePhysics(ecs *ecs.ECS) {
	round.StepPhysics(ecs.World, frameDelta())
}

// UpdateTimers returns the system that ages modifiers and effects and rolls
// speed-up drift with rng.
func UpdateTimers(rng round.Rand) ecs.System {
	return func(ecs *ecs.ECS) {
		round.UpdateTimers(ecs.World, frameDelta(), rng)
	}
}

// UpdatePrune moves eliminated combatants out of the space.
func UpdatePrune(ecs *ecs.ECS) {
	round.Prune(ecs.World)
}

// UpdateRoundStatus decides the winner once one or no combatants are left.
func UpdateRoundStatus(ecs *ecs.ECS) {
	round.UpdateStatus(ecs.World)
}

// IsRoundOver reports whether the round in ecs has a verdict.
func IsRoundOver(ecs *ecs.ECS) bool {
	return round.State(ecs.World).Over()
}
