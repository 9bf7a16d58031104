package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// BodyData points at the combatant's body in the physics world. The body owns
// position and velocity; nothing else keeps a copy.
type BodyData struct {
	Body  *cp.Body
	Shape *cp.Shape
}

var Body = donburi.NewComponentType[BodyData]()

type WallData struct {
	A, B      cp.Vector
	Thickness float64
}

var Wall = donburi.NewComponentType[WallData]()
