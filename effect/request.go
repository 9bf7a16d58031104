// Package effect is the dispatch queue between combat resolution and the
// renderer. The resolver posts requests; the renderer reads them every frame
// and the queue drops them once their timeline finishes.
package effect

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Kind tags the visual an effect request asks for.
type Kind int

const (
	DamageNumber Kind = iota
	Halo
	Implosion
)

func (k Kind) String() string {
	switch k {
	case DamageNumber:
		return "damage-number"
	case Halo:
		return "halo"
	case Implosion:
		return "implosion"
	}
	return "unknown"
}

// Request is a single transient visual.
//
// A request with HasTarget follows its target's body while the target is
// simulated; X and Y hold the anchor position otherwise.
type Request struct {
	Kind      Kind
	Target    donburi.Entity
	HasTarget bool
	X, Y      float64
	Amount    int
	Crit      bool
	Radius    float64
	Duration  float64

	timeline  *gween.Tween
	remaining float64
	done      bool
}

// expiryEpsilon absorbs rounding when many frame deltas add up to exactly
// Duration.
const expiryEpsilon = 1e-9

// start arms the countdown from Duration to zero. remaining is the
// authoritative clock; the tween carries Fraction from 1 to 0 alongside it.
func (r *Request) start() {
	r.remaining = r.Duration
	r.done = r.Duration <= 0
	r.timeline = gween.New(1, 0, float32(max(r.Duration, 0)), ease.Linear)
}

func (r *Request) update(dt float64) {
	if r.done {
		return
	}
	r.remaining -= dt
	if r.remaining <= expiryEpsilon {
		r.remaining = 0
		r.done = true
	}
	r.timeline.Set(float32(r.Duration - r.remaining))
}

// Remaining is the display time left in seconds.
func (r *Request) Remaining() float64 {
	return r.remaining
}

// Fraction runs from 1 when posted down to 0 at expiry.
func (r *Request) Fraction() float64 {
	if r.done || r.Duration <= 0 {
		return 0
	}
	current, _ := r.timeline.Set(float32(r.Duration - r.remaining))
	return min(1, max(0, float64(current)))
}

func (r *Request) Expired() bool {
	return r.done
}

// Eased maps Fraction through an easing curve, for fades that should not be
// linear.
func (r *Request) Eased(fn ease.TweenFunc) float64 {
	return float64(fn(float32(r.Fraction()), 0, 1, 1))
}
