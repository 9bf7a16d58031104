package factory

import (
	"github.com/automoto/boink/archetypes"
	"github.com/automoto/boink/components"
	"github.com/automoto/boink/effect"
	"github.com/automoto/boink/physics"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, &components.SpaceData{World: physics.NewWorld()})
	return space
}

func CreateEffects(w donburi.World) *donburi.Entry {
	fx := archetypes.Effects.Spawn(w)
	components.Effects.Set(fx, &components.EffectsData{Queue: effect.NewQueue()})
	return fx
}

func CreateRound(w donburi.World, number int) *donburi.Entry {
	round := archetypes.Round.Spawn(w)
	components.Round.Set(round, &components.RoundData{Number: number})
	return round
}

func spaceOf(w donburi.World) *physics.World {
	e, ok := components.Space.First(w)
	if !ok {
		panic("factory: world has no space")
	}
	return components.Space.Get(e).World
}
