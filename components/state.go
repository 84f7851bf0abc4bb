package components

import (
	"github.com/captainzonks/hopper/shared/netconfig"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  netconfig.StateID
	PreviousState netconfig.StateID
	StateTimer    float64 // Seconds in the current state
}

// Transition moves to next and restarts the timer when the state changes.
func (s *StateData) Transition(next netconfig.StateID) bool {
	if s.CurrentState == next {
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
	return true
}

var State = donburi.NewComponentType[StateData]()
