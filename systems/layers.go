package systems

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in order.
const (
	LayerArena ecs.LayerID = iota
	LayerBalls
	LayerEffects
	LayerHUD
)
