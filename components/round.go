package components

import "github.com/yohamta/donburi"

type RoundState int

const (
	RoundFighting RoundState = iota
	RoundOver
)

// RoundData is a singleton describing the round in progress.
type RoundData struct {
	Number int
	State  RoundState
	// Winner is the survivor's name, or "No one" when the last combatants
	// eliminated each other.
	Winner string
	// Elapsed counts simulated seconds since the round started.
	Elapsed float64
	Alive   int
}

func (r *RoundData) Over() bool {
	return r.State == RoundOver
}

var Round = donburi.NewComponentType[RoundData]()
