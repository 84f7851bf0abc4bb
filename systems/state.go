package systems

import (
	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/shared/netconfig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateStates(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		state.Transition(deriveState(e))
		state.StateTimer += dt
	})
}

func deriveState(e *donburi.Entry) netconfig.StateID {
	if e.HasComponent(components.Death) {
		return netconfig.Dead
	}
	if e.HasComponent(components.Abilities) && components.Abilities.Get(e).Attributes.IsDead() {
		return netconfig.Dead
	}
	if e.HasComponent(components.Enemy) && components.Enemy.Get(e).Squashed {
		return netconfig.Squashed
	}
	if !e.HasComponent(components.Character) {
		return netconfig.Idle
	}
	char := components.Character.Get(e)
	if !char.Attack.IsOpen() {
		return netconfig.Punching
	}
	if e.HasComponent(components.Physics) && components.Physics.Get(e).Airborne {
		return netconfig.Airborne
	}
	if char.Facing.Moving() {
		return netconfig.Walking
	}
	return netconfig.Idle
}
