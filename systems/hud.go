package systems

import (
	"fmt"

	"github.com/automoto/boink/components"
	cfg "github.com/automoto/boink/config"
	"github.com/automoto/boink/fonts"
	"github.com/automoto/boink/round"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the title bar and the health roster along the bottom.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	width := cfg.WindowWidth()

	titleFace := fonts.Title.Get()
	title := cfg.Arena.Title
	state := round.State(ecs.World)
	if state.Number > 1 {
		title = fmt.Sprintf("%s - round %d", title, state.Number)
	}
	bounds := text.BoundString(titleFace, title)
	titleY := (cfg.Arena.TopHUDHeight + bounds.Dy()) / 2
	text.Draw(screen, title, titleFace, width/2-bounds.Dx()/2, titleY, cfg.HUD.TextColor)

	balls := round.Combatants(ecs.World)
	if len(balls) == 0 {
		return
	}
	face := fonts.Bold.Get()
	column := (width - 2*cfg.Arena.HUDSidePadding) / len(balls)
	top := cfg.Arena.TopHUDHeight + cfg.Arena.Height
	lineY := top + (cfg.Arena.BottomHUDHeight+face.Metrics().Height.Ceil())/2

	for i, e := range balls {
		c := components.Combatant.Get(e)
		clr := cfg.HUD.TextColor
		if c.Alive() {
			clr = c.Color
		}
		line := fmt.Sprintf("%s: %d", c.Name, components.Health.Get(e).Current)
		lb := text.BoundString(face, line)
		x := cfg.Arena.HUDSidePadding + column*i + column/2 - lb.Dx()/2
		text.Draw(screen, line, face, x, lineY, clr)
	}
}
