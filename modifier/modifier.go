// Package modifier holds the short-lived status effects a combatant carries
// after being hit. Modifiers only count down; every derived value is a pure
// function of the remaining and initial durations.
package modifier

import (
	"math"

	cfg "github.com/automoto/boink/config"
)

// Kind tags a Modifier variant.
type Kind int

const (
	KindAngry Kind = iota
	KindPulse
)

func (k Kind) String() string {
	switch k {
	case KindAngry:
		return "angry"
	case KindPulse:
		return "pulse"
	}
	return "unknown"
}

// PulseParams shapes the alpha and scale curves of a pulse.
type PulseParams struct {
	MinAlpha int
	MaxAlpha int
	MinScale float64
	MaxScale float64
	Pulses   int
}

// DefaultPulse returns the pulse shape from config.
func DefaultPulse() PulseParams {
	return PulseParams{
		MinAlpha: cfg.Modifier.PulseMinAlpha,
		MaxAlpha: cfg.Modifier.PulseMaxAlpha,
		MinScale: cfg.Modifier.PulseMinScale,
		MaxScale: cfg.Modifier.PulseMaxScale,
		Pulses:   cfg.Modifier.PulseCount,
	}
}

// Modifier is a time-bounded status effect. Pulse is only meaningful when
// Kind is KindPulse.
type Modifier struct {
	Kind      Kind
	Remaining float64
	Initial   float64
	Pulse     PulseParams
}

// Angry lasts damage * SecondsPerDamage seconds.
func Angry(damage int) Modifier {
	d := float64(damage) * cfg.Modifier.SecondsPerDamage
	return Modifier{Kind: KindAngry, Remaining: d, Initial: d}
}

// Pulse returns a visual pop with the configured duration and shape.
func Pulse() Modifier {
	return NewPulse(cfg.Modifier.PulseDuration, DefaultPulse())
}

// NewPulse returns a pulse lasting duration seconds.
func NewPulse(duration float64, p PulseParams) Modifier {
	return Modifier{Kind: KindPulse, Remaining: duration, Initial: duration, Pulse: p}
}

// Update counts the modifier down by dt, never below zero.
func (m *Modifier) Update(dt float64) {
	m.Remaining = max(0, m.Remaining-dt)
}

func (m Modifier) Active() bool {
	return m.Remaining > 0
}

// Progress runs from 0 when the modifier is fresh to 1 when it expires.
func (m Modifier) Progress() float64 {
	if m.Initial <= 0 {
		return 1
	}
	return 1 - m.Remaining/m.Initial
}

// Alpha dips and recovers Pulses times over the pulse lifetime, starting and
// ending at MaxAlpha.
func (m Modifier) Alpha() int {
	p := m.Pulse
	wave := math.Abs(math.Cos(math.Pi * m.Progress() * float64(p.Pulses)))
	return int(float64(p.MinAlpha) + float64(p.MaxAlpha-p.MinAlpha)*wave)
}

// Scale rises from MinScale to MaxScale at mid-life and back.
func (m Modifier) Scale() float64 {
	p := m.Pulse
	return p.MinScale + (p.MaxScale-p.MinScale)*math.Sin(math.Pi*m.Progress())
}
