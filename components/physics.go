package components

import (
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PhysicsData drives a character on the ground plane plus a height axis.
// X and Y live on the resolv object; Z is tracked here.
type PhysicsData struct {
	Velocity     gamemath.Vec3
	Z            float64
	Gravity      float64
	GravityScale float64
	JumpPower    float64
	MaxSpeed     float64
	Acceleration float64
	Friction     float64
	Airborne     bool
	PastApex     bool
	Disabled     bool // Collision and movement off (squashed enemies)
}

var Physics = donburi.NewComponentType[PhysicsData]()
