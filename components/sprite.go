package components

import (
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SpriteData is the presentation transform replicated to spectators.
type SpriteData struct {
	Scale  gamemath.Vec3
	Offset gamemath.Vec3
}

var Sprite = donburi.NewComponentType[SpriteData]()
