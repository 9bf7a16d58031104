package modifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngryDurationScalesWithDamage(t *testing.T) {
	assert.Equal(t, 2.0, Angry(20).Remaining)
	assert.InDelta(t, 0.7, Angry(7).Remaining, 1e-12)
	assert.Equal(t, 0.0, Angry(0).Remaining)
	assert.False(t, Angry(0).Active())
}

func TestUpdateFloorsAtZero(t *testing.T) {
	m := Pulse()
	m.Update(5)
	assert.Equal(t, 0.0, m.Remaining)
	assert.False(t, m.Active())
	assert.Equal(t, 1.0, m.Progress())
}

func TestSetIsAngryForExactlyItsDuration(t *testing.T) {
	var s Set
	s.Add(Angry(20))

	for i := 0; i < 3; i++ {
		s.Update(0.5)
		require.True(t, s.IsAngry(), "still angry after %d updates", i+1)
	}
	s.Update(0.5)
	assert.False(t, s.IsAngry())
	assert.Equal(t, 0, s.Len())
}

func TestPulseAlphaStartsOpaque(t *testing.T) {
	m := Pulse()
	assert.Equal(t, 0.0, m.Progress())
	assert.Equal(t, 255, m.Alpha())
}

func TestPulseAlphaDipsOncePerPulse(t *testing.T) {
	m := Pulse()
	const steps = 600

	dips := 0
	low := false
	for i := 0; i <= steps; i++ {
		m.Remaining = m.Initial * (1 - float64(i)/steps)
		a := m.Alpha()
		require.GreaterOrEqual(t, a, m.Pulse.MinAlpha)
		require.LessOrEqual(t, a, m.Pulse.MaxAlpha)
		switch {
		case a < 130 && !low:
			dips++
			low = true
		case a > 250:
			low = false
		}
	}
	assert.Equal(t, m.Pulse.Pulses, dips)
}

func TestPulseScalePeaksMidway(t *testing.T) {
	m := Pulse()
	assert.InDelta(t, m.Pulse.MinScale, m.Scale(), 1e-12)

	m.Remaining = m.Initial / 2
	assert.InDelta(t, m.Pulse.MaxScale, m.Scale(), 1e-9)
}

func TestEmptySetDefaults(t *testing.T) {
	var s Set
	assert.False(t, s.IsAngry())
	assert.Equal(t, OpaqueAlpha, s.PulseAlpha())
	assert.Equal(t, 1.0, s.PulseScale())
}

func TestDuplicatesCoexistUntilExpiry(t *testing.T) {
	var s Set
	s.Add(Angry(5))  // 0.5s
	s.Add(Angry(20)) // 2s
	s.Add(Pulse())
	s.Add(Pulse())
	assert.Equal(t, 2, s.Count(KindAngry))
	assert.Equal(t, 2, s.Count(KindPulse))

	s.Update(0.6)
	assert.True(t, s.IsAngry())
	assert.Equal(t, 1, s.Count(KindAngry))
	assert.Equal(t, 2, s.Count(KindPulse))

	s.Update(0.2)
	assert.Equal(t, 0, s.Count(KindPulse))
	assert.Equal(t, OpaqueAlpha, s.PulseAlpha())
}

func TestPulseLookupUsesFirstMatch(t *testing.T) {
	var s Set
	older := Pulse()
	older.Remaining = older.Initial / 6 * 5 // progress 1/6, alpha at its floor
	s.Add(older)
	s.Add(Pulse())

	assert.Equal(t, older.Alpha(), s.PulseAlpha())
	assert.Less(t, s.PulseAlpha(), 130)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "angry", KindAngry.String())
	assert.Equal(t, "pulse", KindPulse.String())
}
