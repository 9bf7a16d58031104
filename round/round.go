// Package round runs one fight: it builds the world for a round and advances
// it tick by tick. It has no rendering dependencies so whole rounds can run
// headless.
package round

import (
	"fmt"
	"log"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/automoto/boink/arena"
	"github.com/automoto/boink/combat"
	"github.com/automoto/boink/components"
	"github.com/automoto/boink/effect"
	"github.com/automoto/boink/physics"
	"github.com/automoto/boink/spawn"
	"github.com/automoto/boink/systems/factory"
	"github.com/automoto/boink/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// NoOne is announced when the last combatants eliminate each other.
const NoOne = "No one"

// Rand drives spawn placement, crit rolls and speed-up drift.
type Rand interface {
	Float64() float64
}

// Setup fills an empty world with the singletons, walls and combatants of a
// new round. Placement runs first, so a failure leaves w untouched.
func Setup(w donburi.World, number int, layout arena.Layout, roster []spawn.Prototype, rng Rand) error {
	placements, err := spawn.NewSpawner(layout, rng).Place(roster)
	if err != nil {
		return fmt.Errorf("setup round %d: %w", number, err)
	}

	factory.CreateSpace(w)
	factory.CreateEffects(w)
	factory.CreateRound(w, number)
	for _, wall := range layout.Walls {
		factory.CreateWall(w, wall)
	}
	for i, p := range placements {
		factory.CreateBall(w, p, i)
	}

	space := Physics(w)
	space.OnContact(combat.NewResolver(w, space, Effects(w), rng).HandleContact)

	State(w).Alive = len(placements)
	log.Printf("[round] round %d: %d combatants in %s", number, len(placements), layout.Name)
	return nil
}

// Physics returns the round's physics world.
func Physics(w donburi.World) *physics.World {
	return components.Space.Get(mustFirst(w, components.Space)).World
}

// Effects returns the round's effect queue.
func Effects(w donburi.World) *effect.Queue {
	return components.Effects.Get(mustFirst(w, components.Effects)).Queue
}

func State(w donburi.World) *components.RoundData {
	return components.Round.Get(mustFirst(w, components.Round))
}

func mustFirst(w donburi.World, c donburi.IComponentType) *donburi.Entry {
	entry, ok := donburi.NewQuery(filter.Contains(c)).First(w)
	if !ok {
		panic(fmt.Sprintf("round: world has no %s", c.Name()))
	}
	return entry
}

// Combatants returns every combatant entry in spawn order, eliminated ones
// included.
func Combatants(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Ball.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Combatant.Get(out[i]).Order < components.Combatant.Get(out[j]).Order
	})
	return out
}

// FrameDelta is the simulated time per tick: one tick of the game loop, but
// never more than one frame at the configured frame rate.
func FrameDelta(tps, fps int) float64 {
	return min(1/float64(tps), 1/float64(fps))
}

// NewRand returns a PCG source for seed. Seed 0 picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
