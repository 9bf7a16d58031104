package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/boink/components"
	cfg "github.com/automoto/boink/config"
	"github.com/automoto/boink/fonts"
	"github.com/automoto/boink/round"
	"github.com/automoto/boink/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// toScreen maps a simulation position into the window, below the top HUD
// bar.
func toScreen(x, y float64) (float32, float32) {
	return float32(x) + float32(cfg.Arena.HUDSidePadding), float32(y) + float32(cfg.Arena.TopHUDHeight)
}

// DrawArena fills the simulation area and draws its walls.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.HUD.BackgroundColor)

	x, y := toScreen(0, 0)
	vector.FillRect(screen, x, y, float32(cfg.Arena.Width), float32(cfg.Arena.Height), cfg.HUD.ArenaColor, false)

	components.Wall.Each(ecs.World, func(e *donburi.Entry) {
		w := components.Wall.Get(e)
		ax, ay := toScreen(w.A.X, w.A.Y)
		bx, by := toScreen(w.B.X, w.B.Y)
		vector.StrokeLine(screen, ax, ay, bx, by, float32(w.Thickness), cfg.HUD.WallColor, true)
	})
}

// DrawBalls renders every combatant still in the space.
func DrawBalls(ecs *ecs.ECS, screen *ebiten.Image) {
	space := round.Physics(ecs.World)
	face := fonts.Small.Get()

	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		pos, ok := space.Position(e.Entity())
		if !ok {
			return
		}
		angle, _ := space.Angle(e.Entity())
		c := components.Combatant.Get(e)
		mods := components.Modifiers.Get(e)
		cx, cy := toScreen(pos.X, pos.Y)

		r := float32(c.Radius * mods.PulseScale())
		fill := c.Color
		if mods.IsAngry() {
			fill = darken(fill, 0.6)
		}
		vector.FillCircle(screen, cx, cy, r, withAlpha(fill, mods.PulseAlpha()), true)

		// A spoke shows the spin.
		sx := cx + r*0.8*float32(math.Cos(angle))
		sy := cy + r*0.8*float32(math.Sin(angle))
		vector.StrokeLine(screen, cx, cy, sx, sy, 3, withAlpha(darken(c.Color, 0.4), mods.PulseAlpha()), true)

		if mods.IsAngry() {
			vector.StrokeCircle(screen, cx, cy, r, 4, cfg.HUD.AngryOutline, true)
		}

		hp := fmt.Sprintf("%d", components.Health.Get(e).Current)
		bounds := text.BoundString(face, hp)
		text.Draw(screen, hp, face, int(cx)-bounds.Dx()/2, int(cy+r)+bounds.Dy()+cfg.HUD.LineSpacing, cfg.HUD.HealthTextColor)
	})
}

func darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// withAlpha returns c with straight (non-premultiplied) alpha a.
func withAlpha(c color.RGBA, a int) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(max(0, min(255, a)))}
}
