package factory

import (
	"github.com/automoto/boink/archetypes"
	"github.com/automoto/boink/arena"
	"github.com/automoto/boink/components"
	cfg "github.com/automoto/boink/config"
	"github.com/yohamta/donburi"
)

// CreateWall adds a static wall to the space singleton, which must exist.
func CreateWall(w donburi.World, wall arena.Wall) *donburi.Entry {
	entry := archetypes.Wall.Spawn(w)
	components.Wall.SetValue(entry, components.WallData{A: wall.A, B: wall.B, Thickness: wall.Thickness})

	spaceOf(w).AddWall(wall.A, wall.B, wall.Thickness, cfg.Arena.WallElasticity, cfg.Arena.WallFriction)
	return entry
}
