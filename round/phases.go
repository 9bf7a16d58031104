package round

import (
	"log"

	"github.com/automoto/boink/components"
	cfg "github.com/automoto/boink/config"
	"github.com/automoto/boink/tags"
	"github.com/yohamta/donburi"
)

// Tick runs the four phases of a simulation step in order.
func Tick(w donburi.World, dt float64, rng Rand) {
	StepPhysics(w, dt)
	UpdateTimers(w, dt, rng)
	Prune(w)
	UpdateStatus(w)
}

// StepPhysics integrates the space. Contacts are resolved synchronously
// inside the step.
func StepPhysics(w donburi.World, dt float64) {
	Physics(w).Step(dt)
}

// UpdateTimers ages modifiers and effects and applies speed-up drift to the
// combatants still fighting.
func UpdateTimers(w donburi.World, dt float64, rng Rand) {
	space := Physics(w)
	tags.Ball.Each(w, func(e *donburi.Entry) {
		components.Modifiers.Get(e).Update(dt)

		if !components.Combatant.Get(e).Alive() || !space.Simulated(e.Entity()) {
			return
		}
		if rng.Float64() >= cfg.Ball.SpeedupChance {
			return
		}
		v, _ := space.Velocity(e.Entity())
		if v.Length() < cfg.Ball.VelocityCap {
			space.SetVelocity(e.Entity(), v.Mult(1+cfg.Ball.SpeedupRate))
		}
	})
	Effects(w).Update(dt)

	state := State(w)
	if !state.Over() {
		state.Elapsed += dt
	}
}

// Prune removes the bodies of combatants eliminated during this step and
// moves them to Removed. It returns how many were removed.
func Prune(w donburi.World) int {
	fx := Effects(w)
	removed := Physics(w).Flush()
	for _, r := range removed {
		entry := w.Entry(r.Entity)
		c := components.Combatant.Get(entry)
		c.Lifecycle = components.Removed
		c.LastX, c.LastY = r.Position.X, r.Position.Y
		fx.Detach(r.Entity, r.Position.X, r.Position.Y)
	}
	return len(removed)
}

// UpdateStatus counts survivors and ends the round once fewer than two are
// left.
func UpdateStatus(w donburi.World) *components.RoundData {
	state := State(w)
	alive := 0
	var last string
	tags.Ball.Each(w, func(e *donburi.Entry) {
		if c := components.Combatant.Get(e); c.Alive() {
			alive++
			last = c.Name
		}
	})
	state.Alive = alive

	if state.Over() || alive > 1 {
		return state
	}
	state.State = components.RoundOver
	state.Winner = NoOne
	if alive == 1 {
		state.Winner = last
	}
	log.Printf("[round] round %d over after %.1fs: %s won!!", state.Number, state.Elapsed, state.Winner)
	return state
}
