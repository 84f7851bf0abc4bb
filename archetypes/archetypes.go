package archetypes

import (
	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/shared/netcomponents"
	"github.com/captainzonks/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Character,
		components.Melee,
		components.Abilities,
		components.Control,
		components.Object,
		components.Physics,
		components.State,
		components.Jump,
		components.Sprite,
		components.Inventory,
		netcomponents.NetPosition,
		netcomponents.NetCharacter,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Character,
		components.Melee,
		components.Abilities,
		components.Control,
		components.Object,
		components.Physics,
		components.State,
		components.Sprite,
		netcomponents.NetPosition,
		netcomponents.NetCharacter,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
		netcomponents.NetPosition,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Arena = newArchetype(
		components.Arena,
		netcomponents.NetArena,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.World.Create(all...))
}
