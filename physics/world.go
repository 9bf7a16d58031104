// Package physics wraps a Chipmunk space for the arena. Bodies carry the
// donburi entity that owns them in UserData so contacts can be mapped back to
// combatants without pointers from the physics side into game state.
package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// Collision types
const (
	CollisionWall cp.CollisionType = iota
	CollisionBall
)

// Contact is one ball-to-ball collision as seen at the start of contact,
// before the solver has applied any impulse. Normal is a unit vector pointing
// from A towards B.
type Contact struct {
	A, B                 donburi.Entity
	Normal               cp.Vector
	VelocityA, VelocityB cp.Vector
	PositionA, PositionB cp.Vector
}

// ContactFunc handles a contact. Returning false makes the space ignore the
// collision for this step.
type ContactFunc func(Contact) bool

// BallSpec describes a ball body.
type BallSpec struct {
	Position        cp.Vector
	Velocity        cp.Vector
	AngularVelocity float64
	Radius          float64
	Mass            float64
	Elasticity      float64
	Friction        float64
}

// Removal reports a body taken out of the space by Flush.
type Removal struct {
	Entity   donburi.Entity
	Position cp.Vector
}

type ball struct {
	body  *cp.Body
	shape *cp.Shape
}

// World owns the Chipmunk space and every body in it.
type World struct {
	space     *cp.Space
	balls     map[donburi.Entity]ball
	pending   []donburi.Entity
	isPending map[donburi.Entity]bool
	removed   map[donburi.Entity]bool
	onContact ContactFunc
	contacts  int
}

// NewWorld returns an empty, gravity-free space with no damping.
func NewWorld() *World {
	w := &World{
		space:     cp.NewSpace(),
		balls:     map[donburi.Entity]ball{},
		isPending: map[donburi.Entity]bool{},
		removed:   map[donburi.Entity]bool{},
	}
	w.space.SetGravity(cp.Vector{})
	w.space.SetDamping(1)

	handler := w.space.NewCollisionHandler(CollisionBall, CollisionBall)
	handler.BeginFunc = w.begin
	return w
}

// OnContact installs the ball-to-ball contact handler.
func (w *World) OnContact(f ContactFunc) {
	w.onContact = f
}

// AddWall adds a static segment from a to b.
func (w *World) AddWall(a, b cp.Vector, thickness, elasticity, friction float64) *cp.Shape {
	shape := cp.NewSegment(w.space.StaticBody, a, b, thickness/2)
	shape.SetElasticity(elasticity)
	shape.SetFriction(friction)
	shape.SetCollisionType(CollisionWall)
	w.space.AddShape(shape)
	return shape
}

// AddBall creates a circular body for e. Adding the same entity twice, or one
// that has already been removed, panics.
func (w *World) AddBall(e donburi.Entity, spec BallSpec) (*cp.Body, *cp.Shape) {
	if _, ok := w.balls[e]; ok || w.removed[e] {
		panic("physics: entity already has a body")
	}
	body := cp.NewBody(spec.Mass, cp.MomentForCircle(spec.Mass, 0, spec.Radius, cp.Vector{}))
	body.SetPosition(spec.Position)
	body.SetVelocity(spec.Velocity.X, spec.Velocity.Y)
	body.SetAngularVelocity(spec.AngularVelocity)
	body.UserData = e

	shape := cp.NewCircle(body, spec.Radius, cp.Vector{})
	shape.SetElasticity(spec.Elasticity)
	shape.SetFriction(spec.Friction)
	shape.SetCollisionType(CollisionBall)

	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.balls[e] = ball{body: body, shape: shape}
	return body, shape
}

// Step integrates the space by dt. Contact handlers run synchronously inside.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// RequestRemoval schedules e to leave the space at the next Flush. It reports
// whether this call scheduled the removal; repeated requests, unknown
// entities and already removed entities are ignored.
func (w *World) RequestRemoval(e donburi.Entity) bool {
	if _, ok := w.balls[e]; !ok || w.isPending[e] {
		return false
	}
	w.isPending[e] = true
	w.pending = append(w.pending, e)
	return true
}

// Flush removes every pending body from the space, in request order.
func (w *World) Flush() []Removal {
	if len(w.pending) == 0 {
		return nil
	}
	out := make([]Removal, 0, len(w.pending))
	for _, e := range w.pending {
		b := w.balls[e]
		pos := b.body.Position()
		w.space.RemoveShape(b.shape)
		w.space.RemoveBody(b.body)
		delete(w.balls, e)
		delete(w.isPending, e)
		w.removed[e] = true
		out = append(out, Removal{Entity: e, Position: pos})
	}
	w.pending = w.pending[:0]
	return out
}

// Pending reports whether e is waiting to be flushed.
func (w *World) Pending(e donburi.Entity) bool {
	return w.isPending[e]
}

// Removed reports whether e's body has been flushed from the space.
func (w *World) Removed(e donburi.Entity) bool {
	return w.removed[e]
}

// Simulated reports whether e has a body that is neither pending nor removed.
func (w *World) Simulated(e donburi.Entity) bool {
	_, ok := w.balls[e]
	return ok && !w.isPending[e]
}

// Body returns e's body while it is in the space.
func (w *World) Body(e donburi.Entity) (*cp.Body, bool) {
	b, ok := w.balls[e]
	if !ok {
		return nil, false
	}
	return b.body, true
}

func (w *World) Velocity(e donburi.Entity) (cp.Vector, bool) {
	b, ok := w.balls[e]
	if !ok {
		return cp.Vector{}, false
	}
	return b.body.Velocity(), true
}

func (w *World) SetVelocity(e donburi.Entity, v cp.Vector) bool {
	b, ok := w.balls[e]
	if !ok {
		return false
	}
	b.body.SetVelocity(v.X, v.Y)
	return true
}

func (w *World) Position(e donburi.Entity) (cp.Vector, bool) {
	b, ok := w.balls[e]
	if !ok {
		return cp.Vector{}, false
	}
	return b.body.Position(), true
}

func (w *World) Angle(e donburi.Entity) (float64, bool) {
	b, ok := w.balls[e]
	if !ok {
		return 0, false
	}
	return b.body.Angle(), true
}

// Contacts counts ball-to-ball contacts delivered to the handler.
func (w *World) Contacts() int {
	return w.contacts
}

func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	bodyA, bodyB := arb.Bodies()
	a, okA := bodyA.UserData.(donburi.Entity)
	b, okB := bodyB.UserData.(donburi.Entity)
	if !okA || !okB {
		return true
	}
	// A body already marked dead takes no further part in the round.
	if w.isPending[a] || w.isPending[b] {
		return false
	}
	if w.onContact == nil {
		return true
	}
	w.contacts++
	return w.onContact(Contact{
		A:         a,
		B:         b,
		Normal:    arb.Normal(),
		VelocityA: bodyA.Velocity(),
		VelocityB: bodyB.Velocity(),
		PositionA: bodyA.Position(),
		PositionB: bodyB.Position(),
	})
}
