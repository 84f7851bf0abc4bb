package netcomponents

import (
	"github.com/captainzonks/hopper/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetCharacterData is the presentation state a spectator needs to draw one
// character.
type NetCharacterData struct {
	Kind      netconfig.CharacterKind
	StateID   netconfig.StateID
	Facing    int     // direction.Direction
	Animation string  // flipbook key, e.g. "walk_upleft"
	PlayRate  float64 // 0 while airborne
	OffsetX   float64 // punch presentation offset
	OffsetY   float64
	ScaleZ    float64 // 0.5 while squashed
	Health    float64
	MaxHealth float64
}

var NetCharacter = donburi.NewComponentType[NetCharacterData]()
