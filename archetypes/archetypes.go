package archetypes

import (
	"github.com/automoto/boink/components"
	"github.com/automoto/boink/tags"
	"github.com/yohamta/donburi"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Combatant,
		components.Health,
		components.Body,
		components.Modifiers,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Wall,
	)
	Space = newArchetype(
		components.Space,
	)
	Effects = newArchetype(
		components.Effects,
	)
	Round = newArchetype(
		components.Round,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
