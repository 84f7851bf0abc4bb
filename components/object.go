package components

import (
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the collision rectangle on the ground plane
// lifted to height z.
func (o ObjectData) Center(z float64) gamemath.Vec3 {
	return gamemath.Vec3{X: o.X + o.W/2, Y: o.Y + o.H/2, Z: z}
}

var Object = donburi.NewComponentType[ObjectData]()
