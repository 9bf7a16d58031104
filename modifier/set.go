package modifier

// OpaqueAlpha is reported when no pulse is running.
const OpaqueAlpha = 255

// Set is the ordered collection of modifiers attached to one combatant.
// Duplicates are allowed; lookups use the first active match.
type Set struct {
	items []Modifier
}

func (s *Set) Add(m Modifier) {
	s.items = append(s.items, m)
}

// Update counts every modifier down by dt and drops the expired ones.
func (s *Set) Update(dt float64) {
	kept := s.items[:0]
	for i := range s.items {
		s.items[i].Update(dt)
		if s.items[i].Active() {
			kept = append(kept, s.items[i])
		}
	}
	clear(s.items[len(kept):])
	s.items = kept
}

func (s *Set) Len() int {
	return len(s.items)
}

// Count returns the number of modifiers of kind k.
func (s *Set) Count(k Kind) int {
	n := 0
	for _, m := range s.items {
		if m.Kind == k {
			n++
		}
	}
	return n
}

func (s *Set) IsAngry() bool {
	_, ok := s.first(KindAngry)
	return ok
}

// PulseAlpha is the alpha of the first running pulse, or OpaqueAlpha.
func (s *Set) PulseAlpha() int {
	if m, ok := s.first(KindPulse); ok {
		return m.Alpha()
	}
	return OpaqueAlpha
}

// PulseScale is the scale of the first running pulse, or 1.
func (s *Set) PulseScale() float64 {
	if m, ok := s.first(KindPulse); ok {
		return m.Scale()
	}
	return 1
}

func (s *Set) first(k Kind) (Modifier, bool) {
	for _, m := range s.items {
		if m.Kind == k && m.Active() {
			return m, true
		}
	}
	return Modifier{}, false
}
