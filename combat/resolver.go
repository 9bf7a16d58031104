// Package combat turns ball-to-ball contacts into damage, status modifiers,
// visual effects and eliminations.
package combat

import (
	"fmt"
	"log"

	"github.com/automoto/boink/components"
	cfg "github.com/automoto/boink/config"
	"github.com/automoto/boink/effect"
	"github.com/automoto/boink/modifier"
	"github.com/automoto/boink/physics"
	"github.com/yohamta/donburi"
)

// Remover takes eliminated combatants out of the simulation. Repeated
// requests for the same entity must be harmless.
type Remover interface {
	RequestRemoval(e donburi.Entity) bool
}

// Hit is what one side of a contact received.
type Hit struct {
	Target donburi.Entity
	Impact float64
	// Crit is the attacker's roll for this hit.
	Crit   bool
	Damage int
	// Voided is set when the tie-break cancelled this side's damage.
	Voided     bool
	Eliminated bool
}

// Outcome of resolving one contact.
type Outcome struct {
	OnA, OnB Hit
}

// Resolver applies collision damage to combatants living in a donburi world.
type Resolver struct {
	world   donburi.World
	bodies  Remover
	effects *effect.Queue
	rng     Rand
}

func NewResolver(world donburi.World, bodies Remover, effects *effect.Queue, rng Rand) *Resolver {
	return &Resolver{
		world:   world,
		bodies:  bodies,
		effects: effects,
		rng:     rng,
	}
}

// HandleContact is a physics.ContactFunc. The collision always proceeds so
// the bounce happens regardless of damage.
func (r *Resolver) HandleContact(c physics.Contact) bool {
	r.Resolve(c)
	return true
}

// Resolve applies one contact. Both combatants must be alive; anything else
// is a programming error and panics.
func (r *Resolver) Resolve(c physics.Contact) Outcome {
	if c.A == c.B {
		violation("contact between %v and itself", c.A)
	}
	a := r.fighter(c.A)
	b := r.fighter(c.B)

	onA, onB := ImpactSpeeds(c.Normal, c.VelocityA, c.VelocityB)

	// Each side's crit is rolled from the speed it inflicts. A rolls first.
	critA := RollCrit(r.rng, onB)
	critB := RollCrit(r.rng, onA)

	rawA := Damage(onA, critB)
	rawB := Damage(onB, critA)
	dmgA, dmgB := BreakTie(a.health.Current, rawA, b.health.Current, rawB)

	out := Outcome{
		OnA: Hit{Target: c.A, Impact: onA, Crit: critB, Damage: dmgA, Voided: dmgA != rawA},
		OnB: Hit{Target: c.B, Impact: onB, Crit: critA, Damage: dmgB, Voided: dmgB != rawB},
	}

	a.health.Damage(dmgA)
	b.health.Damage(dmgB)

	r.react(a, &out.OnA, c.PositionA.X, c.PositionA.Y)
	r.react(b, &out.OnB, c.PositionB.X, c.PositionB.Y)
	return out
}

type fighter struct {
	entity    donburi.Entity
	combatant *components.CombatantData
	health    *components.HealthData
	mods      *modifier.Set
}

func (r *Resolver) fighter(e donburi.Entity) fighter {
	if !r.world.Valid(e) {
		violation("entity %v is not valid", e)
	}
	entry := r.world.Entry(e)
	for _, c := range []donburi.IComponentType{components.Combatant, components.Health, components.Body, components.Modifiers} {
		if !entry.HasComponent(c) {
			violation("entity %v has no %s component", e, c.Name())
		}
	}
	if components.Body.Get(entry).Body == nil {
		violation("entity %v has no physics body", e)
	}
	f := fighter{
		entity:    e,
		combatant: components.Combatant.Get(entry),
		health:    components.Health.Get(entry),
		mods:      components.Modifiers.Get(entry),
	}
	if f.health.Current <= 0 || !f.combatant.Alive() {
		violation("%s entered a contact with %d health (%s)", f.combatant.Name, f.health.Current, f.combatant.Lifecycle)
	}
	return f
}

func (r *Resolver) react(f fighter, hit *Hit, x, y float64) {
	if hit.Damage > 0 {
		f.mods.Add(modifier.Angry(hit.Damage))
		f.mods.Add(modifier.Pulse())

		duration := cfg.Effect.DamageNumberSeconds
		if hit.Crit {
			duration = cfg.Effect.CritDamageNumberSeconds
		}
		r.effects.Post(effect.Request{
			Kind:      effect.DamageNumber,
			Target:    f.entity,
			HasTarget: true,
			X:         x,
			Y:         y,
			Amount:    hit.Damage,
			Crit:      hit.Crit,
			Radius:    f.combatant.Radius,
			Duration:  duration,
		})
		if hit.Crit {
			r.effects.Post(effect.Request{
				Kind:      effect.Halo,
				Target:    f.entity,
				HasTarget: true,
				X:         x,
				Y:         y,
				Radius:    f.combatant.Radius,
				Duration:  cfg.Effect.HaloSeconds,
			})
		}
	}

	if !f.health.Depleted() {
		return
	}
	hit.Eliminated = true
	f.combatant.Lifecycle = components.Dying
	f.combatant.LastX, f.combatant.LastY = x, y
	r.bodies.RequestRemoval(f.entity)
	r.effects.Post(effect.Request{
		Kind:     effect.Implosion,
		X:        x,
		Y:        y,
		Radius:   f.combatant.Radius,
		Duration: cfg.Effect.ImplosionSeconds,
	})
	log.Printf("[combat] %s eliminated (hit for %d, crit=%t)", f.combatant.Name, hit.Damage, hit.Crit)
}

func violation(format string, args ...any) {
	panic("combat: contract violation: " + fmt.Sprintf(format, args...))
}
