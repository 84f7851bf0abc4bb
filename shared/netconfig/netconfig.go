// Package netconfig defines lightweight types shared by the simulation and
// spectators for network serialization. It must not depend on simulation
// packages so spectator clients stay small.
package netconfig

// StateID identifies a character state for presentation and logic.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota
	Walking
	Airborne
	Punching
	Squashed
	Dead
)

// StateToName maps StateID to the name used in logs and flipbook keys.
var StateToName = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Walking:   "walking",
	Airborne:  "airborne",
	Punching:  "punching",
	Squashed:  "squashed",
	Dead:      "dead",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}

// CharacterKind separates players from enemies on the wire.
type CharacterKind uint8

const (
	KindPlayer CharacterKind = iota
	KindEnemy
)
