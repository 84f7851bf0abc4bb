package components

import (
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Intent is what a character wants to do this tick.
type Intent struct {
	Move  gamemath.Vec3 // Desired direction on the ground plane, length <= 1
	Jump  bool
	Punch bool
}

// InputSource produces intents for one character. Bots, enemy brains and
// remote clients all implement it.
type InputSource interface {
	Next(w donburi.World, self *donburi.Entry) Intent
}

type ControlData struct {
	Source InputSource
	Intent Intent
	// Previous is last tick's intent, for edge-triggered actions.
	Previous Intent
}

// JustPressedJump reports a rising edge on the jump intent.
func (c *ControlData) JustPressedJump() bool { return c.Intent.Jump && !c.Previous.Jump }

// JustPressedPunch reports a rising edge on the punch intent.
func (c *ControlData) JustPressedPunch() bool { return c.Intent.Punch && !c.Previous.Punch }

var Control = donburi.NewComponentType[ControlData]()
