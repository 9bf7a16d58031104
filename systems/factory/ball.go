package factory

import (
	"github.com/automoto/boink/archetypes"
	"github.com/automoto/boink/components"
	cfg "github.com/automoto/boink/config"
	"github.com/automoto/boink/modifier"
	"github.com/automoto/boink/physics"
	"github.com/automoto/boink/spawn"
	"github.com/yohamta/donburi"
)

// CreateBall spawns a combatant and its body in the space singleton.
func CreateBall(w donburi.World, p spawn.Placement, order int) *donburi.Entry {
	ball := archetypes.Ball.Spawn(w)

	components.Combatant.SetValue(ball, components.CombatantData{
		Name:   p.Name,
		Color:  p.Color,
		Radius: p.Radius,
		Mass:   p.Mass,
		Order:  order,
		LastX:  p.Position.X,
		LastY:  p.Position.Y,
	})
	components.Health.SetValue(ball, components.HealthData{Current: p.Health, Max: p.Health})
	components.Modifiers.SetValue(ball, modifier.Set{})

	body, shape := spaceOf(w).AddBall(ball.Entity(), physics.BallSpec{
		Position:        p.Position,
		Velocity:        p.Velocity,
		AngularVelocity: p.AngularVelocity,
		Radius:          p.Radius,
		Mass:            p.Mass,
		Elasticity:      cfg.Ball.Elasticity,
		Friction:        cfg.Ball.Friction,
	})
	components.Body.SetValue(ball, components.BodyData{Body: body, Shape: shape})
	return ball
}
