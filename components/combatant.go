package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// Lifecycle is a combatant's place in the round. It only moves forward.
type Lifecycle int

const (
	Alive Lifecycle = iota
	// Dying combatants have hit zero health and are waiting for their body
	// to leave the physics world.
	Dying
	Removed
)

func (l Lifecycle) String() string {
	switch l {
	case Alive:
		return "alive"
	case Dying:
		return "dying"
	case Removed:
		return "removed"
	}
	return "unknown"
}

type CombatantData struct {
	Name   string
	Color  color.RGBA
	Radius float64
	Mass   float64
	// Order is the spawn index, used to lay out the HUD.
	Order     int
	Lifecycle Lifecycle
	// LastX and LastY hold the position recorded at elimination.
	LastX, LastY float64
}

func (c *CombatantData) Alive() bool {
	return c.Lifecycle == Alive
}

var Combatant = donburi.NewComponentType[CombatantData]()
