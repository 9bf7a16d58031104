package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage subtracts amount, clamping at zero, and returns the new value.
func (h *HealthData) Damage(amount int) int {
	h.Current = max(0, h.Current-amount)
	return h.Current
}

func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
