package components

import (
	"github.com/automoto/boink/effect"
	"github.com/automoto/boink/physics"
	"github.com/yohamta/donburi"
)

type SpaceData struct {
	World *physics.World
}

// Space is a singleton holding the round's physics world.
var Space = donburi.NewComponentType[SpaceData]()

type EffectsData struct {
	Queue *effect.Queue
}

// Effects is a singleton holding the visual effect queue.
var Effects = donburi.NewComponentType[EffectsData]()
