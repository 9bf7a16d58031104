package combat

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/automoto/boink/components"
	"github.com/automoto/boink/effect"
	"github.com/automoto/boink/modifier"
	"github.com/automoto/boink/physics"
	"github.com/automoto/boink/tags"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// scripted replays vals in order, wrapping around.
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func panicMessage(f func()) (msg string) {
	defer func() {
		msg, _ = recover().(string)
	}()
	f()
	return ""
}

func neverCrit() *scripted { return &scripted{vals: []float64{0.999}} }

type arena struct {
	world   donburi.World
	bodies  *physics.World
	effects *effect.Queue
}

func newArena() *arena {
	return &arena{
		world:   donburi.NewWorld(),
		bodies:  physics.NewWorld(),
		effects: effect.NewQueue(),
	}
}

func (a *arena) spawn(t *testing.T, name string, health int, x float64) donburi.Entity {
	t.Helper()
	e := a.world.Create(tags.Ball, components.Combatant, components.Health, components.Body, components.Modifiers)
	entry := a.world.Entry(e)
	components.Combatant.SetValue(entry, components.CombatantData{Name: name, Radius: 10, Mass: 1})
	components.Health.SetValue(entry, components.HealthData{Current: health, Max: 100})
	body, shape := a.bodies.AddBall(e, physics.BallSpec{Position: cp.Vector{X: x}, Radius: 10, Mass: 1})
	components.Body.SetValue(entry, components.BodyData{Body: body, Shape: shape})
	return e
}

func (a *arena) resolver(rng Rand) *Resolver {
	return NewResolver(a.world, a.bodies, a.effects, rng)
}

func (a *arena) health(e donburi.Entity) int {
	return components.Health.Get(a.world.Entry(e)).Current
}

func (a *arena) combatant(e donburi.Entity) *components.CombatantData {
	return components.Combatant.Get(a.world.Entry(e))
}

func (a *arena) mods(e donburi.Entity) *modifier.Set {
	return components.Modifiers.Get(a.world.Entry(e))
}

func contact(a, b donburi.Entity, vA, vB cp.Vector) physics.Contact {
	return physics.Contact{
		A:         a,
		B:         b,
		Normal:    cp.Vector{X: 1},
		VelocityA: vA,
		VelocityB: vB,
		PositionA: cp.Vector{X: 100, Y: 50},
		PositionB: cp.Vector{X: 120, Y: 50},
	}
}

func TestImpactSpeeds(t *testing.T) {
	n := cp.Vector{X: 1}

	onA, onB := ImpactSpeeds(n, cp.Vector{X: 300}, cp.Vector{X: -100})
	assert.Equal(t, 100.0, onA)
	assert.Equal(t, 300.0, onB)

	onA, onB = ImpactSpeeds(n, cp.Vector{X: -50}, cp.Vector{X: 50})
	assert.Zero(t, onA)
	assert.Zero(t, onB)

	// Tangential motion does not count.
	onA, onB = ImpactSpeeds(n, cp.Vector{Y: 500}, cp.Vector{X: -40, Y: -500})
	assert.Equal(t, 40.0, onA)
	assert.Zero(t, onB)
}

func TestCritChance(t *testing.T) {
	assert.InDelta(t, 0.05, CritChance(0), 1e-12)
	assert.InDelta(t, 0.15, CritChance(1000), 1e-12)
	assert.Equal(t, 1.0, CritChance(20000))
}

func TestRollCritComparesAgainstChance(t *testing.T) {
	assert.True(t, RollCrit(&scripted{vals: []float64{0.04}}, 0))
	assert.False(t, RollCrit(&scripted{vals: []float64{0.05}}, 0))
	assert.True(t, RollCrit(&scripted{vals: []float64{0.999}}, 10000))
}

func TestDamage(t *testing.T) {
	assert.Equal(t, 0, Damage(0, false))
	assert.Equal(t, 0, Damage(19.9, true))
	assert.Equal(t, 19, Damage(399, false))
	assert.Equal(t, 20, Damage(400, false))
	assert.Equal(t, 40, Damage(400, true))
}

func TestDamageProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	prev := -1
	for speed := 0.0; speed < 3000; speed += rng.Float64() * 7 {
		d := Damage(speed, false)
		require.Equal(t, int(math.Floor(speed/20)), d)
		require.GreaterOrEqual(t, d, prev)
		require.Equal(t, 2*d, Damage(speed, true))
		prev = d
	}
}

func TestBreakTie(t *testing.T) {
	a, b := BreakTie(10, 30, 10, 15)
	assert.Equal(t, 30, a)
	assert.Zero(t, b, "b ends less far below zero and survives")

	a, b = BreakTie(10, 12, 10, 40)
	assert.Zero(t, a)
	assert.Equal(t, 40, b)

	a, b = BreakTie(10, 20, 20, 30)
	assert.Equal(t, 20, a, "equal tentative health keeps both deaths")
	assert.Equal(t, 30, b)

	a, b = BreakTie(50, 10, 10, 20)
	assert.Equal(t, 10, a)
	assert.Equal(t, 20, b)

	// Only a collision that would kill both sides is tie-broken.
	a, b = BreakTie(10, 15, 10, 5)
	assert.Equal(t, 15, a)
	assert.Equal(t, 5, b)
}

func TestResolveHeadOn(t *testing.T) {
	ar := newArena()
	a := ar.spawn(t, "nil", 100, 0)
	b := ar.spawn(t, "jin", 100, 50)

	out := ar.resolver(neverCrit()).Resolve(contact(a, b, cp.Vector{X: 400}, cp.Vector{}))

	assert.Equal(t, 100, ar.health(a))
	assert.Equal(t, 80, ar.health(b))
	assert.Equal(t, 20, out.OnB.Damage)
	assert.Equal(t, 400.0, out.OnB.Impact)
	assert.Zero(t, out.OnA.Damage)
	assert.False(t, out.OnB.Eliminated)

	assert.Zero(t, ar.mods(a).Len())
	assert.True(t, ar.mods(b).IsAngry())
	assert.Equal(t, 1, ar.mods(b).Count(modifier.KindPulse))

	require.Equal(t, 1, ar.effects.Len())
	num := ar.effects.Requests()[0]
	assert.Equal(t, effect.DamageNumber, num.Kind)
	assert.Equal(t, b, num.Target)
	assert.Equal(t, 20, num.Amount)
	assert.False(t, num.Crit)
	assert.Equal(t, 1.0, num.Duration)
}

func TestResolveSymmetricHeadOn(t *testing.T) {
	ar := newArena()
	a := ar.spawn(t, "nil", 100, 0)
	b := ar.spawn(t, "jin", 100, 50)

	out := ar.resolver(neverCrit()).Resolve(contact(a, b, cp.Vector{X: 400}, cp.Vector{X: -400}))

	assert.Equal(t, 80, ar.health(a))
	assert.Equal(t, 80, ar.health(b))
	assert.Equal(t, 400.0, out.OnA.Impact)
	assert.Equal(t, 400.0, out.OnB.Impact)
	assert.False(t, out.OnA.Eliminated)
	assert.False(t, out.OnB.Eliminated)

	for _, e := range []donburi.Entity{a, b} {
		assert.True(t, ar.mods(e).IsAngry())
		assert.Equal(t, 1, ar.mods(e).Count(modifier.KindPulse))
	}

	assert.Equal(t, 2, ar.effects.Len())
	assert.Equal(t, 2, ar.effects.CountKind(effect.DamageNumber))
	assert.Zero(t, ar.effects.CountKind(effect.Halo))
}

func TestResolveSeparatingContactDoesNothing(t *testing.T) {
	ar := newArena()
	a := ar.spawn(t, "nil", 100, 0)
	b := ar.spawn(t, "jin", 100, 50)

	out := ar.resolver(neverCrit()).Resolve(contact(a, b, cp.Vector{X: -300}, cp.Vector{X: 300}))

	assert.Zero(t, out.OnA.Damage)
	assert.Zero(t, out.OnB.Damage)
	assert.Equal(t, 100, ar.health(a))
	assert.Equal(t, 100, ar.health(b))
	assert.Zero(t, ar.effects.Len())
	assert.Zero(t, ar.mods(a).Len())
}

func TestResolveCritDoublesAndPostsHalo(t *testing.T) {
	ar := newArena()
	a := ar.spawn(t, "nil", 100, 0)
	b := ar.spawn(t, "jin", 100, 50)

	// A rolls first and crits; B does not.
	rng := &scripted{vals: []float64{0.0, 0.999}}
	out := ar.resolver(rng).Resolve(contact(a, b, cp.Vector{X: 400}, cp.Vector{}))

	assert.True(t, out.OnB.Crit)
	assert.False(t, out.OnA.Crit)
	assert.Equal(t, 60, ar.health(b))
	assert.Equal(t, 2, rng.i)

	assert.Equal(t, 1, ar.effects.CountKind(effect.DamageNumber))
	assert.Equal(t, 1, ar.effects.CountKind(effect.Halo))
	num := ar.effects.Requests()[0]
	assert.True(t, num.Crit)
	assert.Equal(t, 2.0, num.Duration)
}

func TestCritWithoutDamagePostsNothing(t *testing.T) {
	ar := newArena()
	a := ar.spawn(t, "nil", 100, 0)
	b := ar.spawn(t, "jin", 100, 50)

	out := ar.resolver(&scripted{vals: []float64{0}}).Resolve(contact(a, b, cp.Vector{X: 10}, cp.Vector{}))

	assert.True(t, out.OnB.Crit)
	assert.Zero(t, out.OnB.Damage)
	assert.Zero(t, ar.effects.Len())
}

func TestHealthClampsAtZeroAndEliminates(t *testing.T) {
	ar := newArena()
	a := ar.spawn(t, "nil", 100, 0)
	b := ar.spawn(t, "jin", 15, 50)

	out := ar.resolver(neverCrit()).Resolve(contact(a, b, cp.Vector{X: 400}, cp.Vector{}))

	assert.True(t, out.OnB.Eliminated)
	assert.Zero(t, ar.health(b))
	assert.Equal(t, components.Dying, ar.combatant(b).Lifecycle)
	assert.Equal(t, 120.0, ar.combatant(b).LastX)
	assert.Equal(t, 50.0, ar.combatant(b).LastY)
	assert.True(t, ar.bodies.Pending(b))

	assert.Equal(t, 1, ar.effects.CountKind(effect.Implosion))
	var implosion *effect.Request
	for _, r := range ar.effects.Requests() {
		if r.Kind == effect.Implosion {
			implosion = r
		}
	}
	require.NotNil(t, implosion)
	assert.False(t, implosion.HasTarget)
	assert.Equal(t, 120.0, implosion.X)

	removed := ar.bodies.Flush()
	require.Len(t, removed, 1)
	assert.Equal(t, b, removed[0].Entity)
	assert.False(t, ar.bodies.RequestRemoval(b))
	assert.Nil(t, ar.bodies.Flush())
}

func TestCritKillCarriesHalo(t *testing.T) {
	ar := newArena()
	a := ar.spawn(t, "nil", 100, 0)
	b := ar.spawn(t, "jin", 30, 50)

	out := ar.resolver(&scripted{vals: []float64{0.0, 0.999}}).Resolve(contact(a, b, cp.Vector{X: 400}, cp.Vector{}))

	assert.True(t, out.OnB.Eliminated)
	assert.True(t, out.OnB.Crit)
	assert.Equal(t, 1, ar.effects.CountKind(effect.Halo))
	assert.Equal(t, 1, ar.effects.CountKind(effect.Implosion))
}

func TestResolveBreaksMutualKill(t *testing.T) {
	ar := newArena()
	a := ar.spawn(t, "nil", 10, 0)
	b := ar.spawn(t, "jin", 10, 50)

	// A takes 30 (tentative -20), B takes 15 (tentative -5).
	out := ar.resolver(neverCrit()).Resolve(contact(a, b, cp.Vector{X: 300}, cp.Vector{X: -600}))

	assert.True(t, out.OnA.Eliminated)
	assert.False(t, out.OnB.Eliminated)
	assert.True(t, out.OnB.Voided)
	assert.Zero(t, out.OnB.Damage)
	assert.Equal(t, 10, ar.health(b))
	assert.Zero(t, ar.mods(b).Len())
	assert.Equal(t, components.Alive, ar.combatant(b).Lifecycle)
}

func TestResolveEqualMutualKillEliminatesBoth(t *testing.T) {
	ar := newArena()
	a := ar.spawn(t, "nil", 10, 0)
	b := ar.spawn(t, "jin", 10, 50)

	out := ar.resolver(neverCrit()).Resolve(contact(a, b, cp.Vector{X: 400}, cp.Vector{X: -400}))

	assert.True(t, out.OnA.Eliminated)
	assert.True(t, out.OnB.Eliminated)
	assert.Len(t, ar.bodies.Flush(), 2)
}

func TestContractViolationsPanic(t *testing.T) {
	ar := newArena()
	a := ar.spawn(t, "nil", 100, 0)
	b := ar.spawn(t, "jin", 100, 50)
	r := ar.resolver(neverCrit())

	assert.True(t, strings.HasPrefix(panicMessage(func() {
		r.Resolve(contact(a, a, cp.Vector{}, cp.Vector{}))
	}), "combat: contract violation: contact between"))

	bare := ar.world.Create(tags.Ball)
	assert.Panics(t, func() { r.Resolve(contact(a, bare, cp.Vector{}, cp.Vector{})) })

	ar.world.Remove(bare)
	assert.Panics(t, func() { r.Resolve(contact(bare, b, cp.Vector{}, cp.Vector{})) })

	bodiless := ar.world.Create(tags.Ball, components.Combatant, components.Health, components.Body, components.Modifiers)
	components.Health.SetValue(ar.world.Entry(bodiless), components.HealthData{Current: 100, Max: 100})
	assert.True(t, strings.HasPrefix(panicMessage(func() {
		r.Resolve(contact(a, bodiless, cp.Vector{X: 400}, cp.Vector{}))
	}), "combat: contract violation: entity"))
	assert.Equal(t, 100, ar.health(a), "nothing is applied before the check")

	components.Health.Get(ar.world.Entry(b)).Current = 0
	assert.Panics(t, func() { r.Resolve(contact(a, b, cp.Vector{X: 400}, cp.Vector{})) })
}

func TestHandleContactLetsCollisionProceed(t *testing.T) {
	ar := newArena()
	a := ar.spawn(t, "nil", 100, 0)
	b := ar.spawn(t, "jin", 100, 50)

	assert.True(t, ar.resolver(neverCrit()).HandleContact(contact(a, b, cp.Vector{X: 400}, cp.Vector{})))
	assert.Equal(t, 80, ar.health(b))
}
