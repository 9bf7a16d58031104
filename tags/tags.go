package tags

import "github.com/yohamta/donburi"

var (
	Ball = donburi.NewTag().SetName("Ball")
	Wall = donburi.NewTag().SetName("Wall")
)

// Resolv tags for spawn placement
const (
	ResolvBall = "ball"
	ResolvWall = "wall"
)
