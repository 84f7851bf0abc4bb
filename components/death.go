package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence.
// Timer counts down in seconds; at 0 the entity respawns or is removed.
type DeathData struct {
	Timer     float64
	Killer    donburi.Entity
	HasKiller bool
}

var Death = donburi.NewComponentType[DeathData]()
