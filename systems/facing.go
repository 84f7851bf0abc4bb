package systems

import (
	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/direction"
	"github.com/captainzonks/hopper/events"
	"github.com/captainzonks/hopper/gate"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFacing resolves each character's facing from its velocity, picks the
// matching animation and emits footsteps. Within a tick the direction is
// settled before animation and footstep emission read it. Characters with a
// closed attack gate keep the facing and flipbook their punch started with.
func UpdateFacing(ecs *ecs.ECS) {
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		if physics.Disabled {
			return
		}
		char := components.Character.Get(e)
		if !char.Attack.IsOpen() {
			return
		}

		dir := char.Facing.Resolve(physics.Velocity, physics.Airborne, cameraBasis(e))
		moving := char.Facing.Moving()
		char.Animation = direction.Animation(dir, physics.Velocity.Size(), physics.Airborne)

		if moving && !physics.Airborne && char.Footstep.Pulse(gate.FootstepCooldown) {
			events.FootstepEvent.Publish(ecs.World, events.Footstep{
				Entity:   e.Entity(),
				Position: entityPosition(e),
				Facing:   dir,
			})
		}
	})
}

// cameraBasis is the view players steer with. Other characters face by
// their own basis.
func cameraBasis(e *donburi.Entry) *direction.Basis {
	if !e.HasComponent(components.Player) {
		return nil
	}
	basis := direction.BasisFromRotator(components.Player.Get(e).Camera)
	return &basis
}
