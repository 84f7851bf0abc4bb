package systems

import (
	"testing"

	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/direction"
	"github.com/captainzonks/hopper/events"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/systems/factory"
	"github.com/yohamta/donburi"
)

func TestUpdateFacingFootsteps(t *testing.T) {
	e := newTestECS(t)
	player := newPlayer(e, 1000, 1000, nil)

	steps := 0
	events.FootstepEvent.Subscribe(e.World, func(_ donburi.World, ev events.Footstep) {
		steps++
	})

	components.Physics.Get(player).Velocity = gamemath.Vec3{X: 300}
	UpdateFacing(e)
	UpdateFacing(e)
	events.ProcessAll(e.World)
	if steps != 1 {
		t.Fatalf("footsteps = %d, want 1 within the cooldown", steps)
	}

	factory.Timers(e).Update(0.31)
	UpdateFacing(e)
	events.ProcessAll(e.World)
	if steps != 2 {
		t.Errorf("footsteps = %d, want 2 after the cooldown", steps)
	}

	char := components.Character.Get(player)
	if char.Animation.Mode != direction.Walk || char.Animation.PlayRate != 1 {
		t.Errorf("animation = %+v, want walking", char.Animation)
	}

	factory.Timers(e).Update(0.31)
	physics := components.Physics.Get(player)
	physics.Airborne = true
	UpdateFacing(e)
	events.ProcessAll(e.World)
	if steps != 2 {
		t.Error("footstep while airborne")
	}
	if got := components.Character.Get(player).Animation.PlayRate; got != 0 {
		t.Errorf("airborne PlayRate = %v, want 0", got)
	}
}

func TestUpdateFacingKeepsDirectionWhenStopped(t *testing.T) {
	e := newTestECS(t)
	player := newPlayer(e, 1000, 1000, nil)
	physics := components.Physics.Get(player)

	physics.Velocity = gamemath.Vec3{Y: -300}
	UpdateFacing(e)
	facing := components.Character.Get(player).Facing.Facing()

	physics = components.Physics.Get(player)
	physics.Velocity = gamemath.Vec3{}
	UpdateFacing(e)
	char := components.Character.Get(player)
	if char.Facing.Facing() != facing {
		t.Errorf("facing changed to %v when stopped, want %v", char.Facing.Facing(), facing)
	}
	if char.Animation.Mode != direction.Idle {
		t.Errorf("animation = %+v, want idle", char.Animation)
	}
}

func TestUpdateFacingHoldsDuringPunch(t *testing.T) {
	e := newTestECS(t)
	player := newPlayer(e, 1000, 1000, nil)

	steps := 0
	events.FootstepEvent.Subscribe(e.World, func(_ donburi.World, ev events.Footstep) {
		steps++
	})

	components.Physics.Get(player).Velocity = gamemath.Vec3{X: 300}
	UpdateFacing(e)
	before := components.Character.Get(player).Facing.Facing()
	factory.Timers(e).Update(0.31)
	events.ProcessAll(e.World)
	steps = 0

	if !HandlePunch(e.World, player) {
		t.Fatal("HandlePunch = false")
	}
	components.Physics.Get(player).Velocity = gamemath.Vec3{Y: -300}
	UpdateFacing(e)
	events.ProcessAll(e.World)

	char := components.Character.Get(player)
	if got := char.Facing.Facing(); got != before {
		t.Errorf("facing turned to %v mid-punch, want %v", got, before)
	}
	if want := direction.PunchAnimation(before); char.Animation != want {
		t.Errorf("animation = %v mid-punch, want %v", char.Animation, want)
	}
	if want := direction.PunchOffset(before); char.PresentationOffset != want {
		t.Errorf("offset = %+v, want %+v", char.PresentationOffset, want)
	}
	if steps != 0 {
		t.Errorf("footsteps = %d during the punch, want 0", steps)
	}

	factory.Timers(e).Update(0.31)
	UpdateFacing(e)
	char = components.Character.Get(player)
	if got := char.Facing.Facing(); got != direction.Left {
		t.Errorf("facing after the punch = %v, want Left", got)
	}
	if char.Animation.Mode != direction.Walk {
		t.Errorf("animation after the punch = %v, want walking", char.Animation)
	}
}

func TestUpdateFacingWalksInsideDeadZone(t *testing.T) {
	e := newTestECS(t)
	player := newPlayer(e, 1000, 1000, nil)

	components.Physics.Get(player).Velocity = gamemath.Vec3{X: 1e-9}
	UpdateFacing(e)
	char := components.Character.Get(player)
	if char.Facing.Moving() {
		t.Fatal("dead-zone speed resolved as moving")
	}
	if char.Animation.Mode != direction.Walk {
		t.Errorf("animation = %v, want walking for any speed", char.Animation)
	}
}
