package systems

import (
	"fmt"

	cfg "github.com/automoto/boink/config"
	"github.com/automoto/boink/effect"
	"github.com/automoto/boink/fonts"
	"github.com/automoto/boink/round"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// DrawEffects renders the effect queue. It never changes it; expiry happens
// in UpdateTimers.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	space := round.Physics(ecs.World)
	for _, r := range round.Effects(ecs.World).Requests() {
		x, y := r.X, r.Y
		if r.HasTarget {
			if pos, ok := space.Position(r.Target); ok {
				x, y = pos.X, pos.Y
			}
		}
		switch r.Kind {
		case effect.DamageNumber:
			drawDamageNumber(screen, r, x, y)
		case effect.Halo:
			drawHalo(screen, r, x, y)
		case effect.Implosion:
			drawImplosion(screen, r, x, y)
		}
	}
}

// DamageNumberSize scales the font with the damage dealt.
func DamageNumberSize(amount int) float64 {
	span := cfg.Effect.DamageNumberMaxSize - cfg.Effect.DamageNumberMinSize
	return cfg.Effect.DamageNumberMinSize + span*float64(amount)/float64(cfg.Ball.Health)
}

func drawDamageNumber(screen *ebiten.Image, r *effect.Request, x, y float64) {
	face := fonts.Damage.Sized(DamageNumberSize(r.Amount))
	clr := cfg.HUD.DamageColor
	if r.Crit {
		clr = cfg.HUD.CritColor
	}
	label := fmt.Sprintf("%d", r.Amount)
	if r.Crit {
		label += "!"
	}

	// Rises while it fades.
	rise := (1 - r.Fraction()) * cfg.Effect.DamageNumberOffset
	sx, sy := toScreen(x, y-r.Radius-cfg.Effect.DamageNumberOffset-rise)
	bounds := text.BoundString(face, label)
	alpha := int(255 * r.Eased(ease.OutQuad))
	text.Draw(screen, label, face, int(sx)-bounds.Dx()/2, int(sy), withAlpha(clr, alpha))
}

func drawHalo(screen *ebiten.Image, r *effect.Request, x, y float64) {
	grow := cfg.Effect.HaloMinPadding + (cfg.Effect.HaloMaxPadding-cfg.Effect.HaloMinPadding)*(1-r.Fraction())
	cx, cy := toScreen(x, y)
	alpha := int(cfg.Effect.HaloMaxAlpha * r.Fraction())
	vector.StrokeCircle(screen, cx, cy, float32(r.Radius+grow), 6, withAlpha(cfg.HUD.HaloColor, alpha), true)
}

func drawImplosion(screen *ebiten.Image, r *effect.Request, x, y float64) {
	radius := (r.Radius + cfg.Effect.ImplosionPadding) * r.Fraction()
	if radius <= 0 {
		return
	}
	cx, cy := toScreen(x, y)
	alpha := int(255 * r.Eased(ease.InQuad))
	vector.StrokeCircle(screen, cx, cy, float32(radius), 3, withAlpha(cfg.HUD.WallColor, alpha), true)
}
