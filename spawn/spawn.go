// Package spawn places a round's combatants at random, non-overlapping
// positions inside an arena and gives each a random initial motion.
package spawn

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/automoto/boink/arena"
	cfg "github.com/automoto/boink/config"
	"github.com/automoto/boink/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
)

// ErrNoRoom is returned when no free position was found within the attempt
// budget.
var ErrNoRoom = errors.New("no room to place combatant")

// Rand supplies uniform draws in [0, 1).
type Rand interface {
	Float64() float64
}

// Prototype is the per-combatant input to placement.
type Prototype struct {
	Name   string
	Color  color.RGBA
	Radius float64
	Mass   float64
	Health int
}

// Roster builds prototypes for names using the configured ball values.
func Roster(names []string) []Prototype {
	out := make([]Prototype, 0, len(names))
	for _, name := range names {
		out = append(out, Prototype{
			Name:   name,
			Color:  cfg.ColorFor(name),
			Radius: cfg.Ball.Radius,
			Mass:   cfg.Ball.Mass,
			Health: cfg.Ball.Health,
		})
	}
	return out
}

type Placement struct {
	Prototype
	Position        cp.Vector
	Velocity        cp.Vector
	AngularVelocity float64
}

// Spawner keeps a resolv space of everything already placed so each
// candidate only needs exact checks against nearby objects.
type Spawner struct {
	layout   arena.Layout
	space    *resolv.Space
	rng      Rand
	attempts int
	margin   float64
}

func NewSpawner(layout arena.Layout, rng Rand) *Spawner {
	cell := cfg.Arena.SpawnCellSize
	s := &Spawner{
		layout:   layout,
		space:    resolv.NewSpace(int(math.Ceil(layout.Width))+cell, int(math.Ceil(layout.Height))+cell, cell, cell),
		rng:      rng,
		attempts: cfg.Arena.SpawnAttempts,
	}
	for i := range layout.Walls {
		w := layout.Walls[i]
		x, y, width, height := w.Bounds()
		obj := resolv.NewObject(x, y, width, height, tags.ResolvWall)
		obj.Data = &w
		s.space.Add(obj)
		s.margin = max(s.margin, w.Thickness/2)
	}
	return s
}

// Place positions every prototype in order. The first one that does not fit
// fails the whole placement.
func (s *Spawner) Place(prototypes []Prototype) ([]Placement, error) {
	out := make([]Placement, 0, len(prototypes))
	for _, p := range prototypes {
		pos, ok := s.findSpot(p.Radius)
		if !ok {
			log.Printf("[spawn] gave up on %s after %d attempts", p.Name, s.attempts)
			return nil, fmt.Errorf("place %s: %w", p.Name, ErrNoRoom)
		}
		placed := resolv.NewObject(pos.X-p.Radius, pos.Y-p.Radius, 2*p.Radius, 2*p.Radius, tags.ResolvBall)
		placed.Data = &circle{center: pos, radius: p.Radius}
		s.space.Add(placed)

		out = append(out, Placement{
			Prototype:       p,
			Position:        pos,
			Velocity:        s.velocity(),
			AngularVelocity: s.uniform(cfg.Ball.MinAngularVelocity, cfg.Ball.MaxAngularVelocity),
		})
	}
	return out, nil
}

type circle struct {
	center cp.Vector
	radius float64
}

func (s *Spawner) findSpot(radius float64) (cp.Vector, bool) {
	lo := radius + s.margin
	if s.layout.Width-lo < lo || s.layout.Height-lo < lo {
		return cp.Vector{}, false
	}

	probe := resolv.NewObject(0, 0, 2*radius, 2*radius)
	s.space.Add(probe)
	defer s.space.Remove(probe)

	for i := 0; i < s.attempts; i++ {
		pos := cp.Vector{
			X: s.uniform(lo, s.layout.Width-lo),
			Y: s.uniform(lo, s.layout.Height-lo),
		}
		probe.X = pos.X - radius
		probe.Y = pos.Y - radius
		probe.Update()
		if s.isFree(probe, pos, radius) {
			return pos, true
		}
	}
	return cp.Vector{}, false
}

func (s *Spawner) isFree(probe *resolv.Object, pos cp.Vector, radius float64) bool {
	collision := probe.Check(0, 0, tags.ResolvBall, tags.ResolvWall)
	if collision == nil {
		return true
	}
	for _, obj := range collision.Objects {
		switch data := obj.Data.(type) {
		case *circle:
			if pos.Distance(data.center) < radius+data.radius {
				return false
			}
		case *arena.Wall:
			if data.Distance(pos) < radius+data.Thickness/2 {
				return false
			}
		}
	}
	return true
}

// velocity has a uniform random direction and a speed uniform between the
// configured bounds.
func (s *Spawner) velocity() cp.Vector {
	angle := s.uniform(0, 2*math.Pi)
	speed := s.uniform(cfg.MinInitialSpeed(), cfg.MaxInitialSpeed())
	return cp.ForAngle(angle).Mult(speed)
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}
