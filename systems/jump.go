package systems

import (
	"github.com/captainzonks/hopper/components"
	cfg "github.com/captainzonks/hopper/config"
	"github.com/captainzonks/hopper/systems/factory"
	"github.com/captainzonks/hopper/timer"
	"github.com/yohamta/donburi"
)

// Jump launches e with its current jump power.
func Jump(e *donburi.Entry, timers *timer.Manager) {
	physics := components.Physics.Get(e)
	physics.Velocity.Z = physics.JumpPower
	physics.Airborne = true
	OnJumped(e, timers)
}

// OnJumped counts the jump and stops a pending chain reset.
func OnJumped(e *donburi.Entry, timers *timer.Manager) {
	components.Physics.Get(e).PastApex = false
	jump := components.Jump.Get(e)
	jump.Count++
	timers.ClearTimer(&jump.Reset)
}

// OnLanded restores gravity and raises the jump power for the next jump in
// the chain. The chain resets unless the character jumps again within the
// reset window.
func OnLanded(e *donburi.Entry, timers *timer.Manager) {
	physics := components.Physics.Get(e)
	resetGravity(physics)

	jump := components.Jump.Get(e)
	if jump.Count > 2 {
		resetJumpPower(e)
	}
	modifyJumpPower(jump, physics)
	timers.SetTimer(&jump.Reset, cfg.Movement.JumpReset, func() {
		if e.Valid() {
			resetJumpPower(e)
		}
	})
}

// NotifyApex switches to the heavier fall gravity.
func NotifyApex(physics *components.PhysicsData) {
	physics.GravityScale = cfg.Movement.ApexGravityScale
	physics.PastApex = true
}

func resetGravity(physics *components.PhysicsData) {
	physics.GravityScale = cfg.Movement.GravityScale
	physics.PastApex = false
}

func modifyJumpPower(jump *components.JumpData, physics *components.PhysicsData) {
	switch jump.Count {
	case 1, 2:
		physics.JumpPower = factory.JumpPowerLevel(jump.Count)
	}
}

func resetJumpPower(e *donburi.Entry) {
	components.Jump.Get(e).Count = 0
	components.Physics.Get(e).JumpPower = factory.JumpPowerLevel(0)
}
