package systems

import (
	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/shared/netcomponents"
	"github.com/captainzonks/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNetSync copies simulation state into the networked components
// spectators receive.
func UpdateNetSync(ecs *ecs.ECS) {
	netcomponents.NetPosition.Each(ecs.World, func(e *donburi.Entry) {
		pos := entityPosition(e)
		netcomponents.NetPosition.SetValue(e, netcomponents.NetPositionData{X: pos.X, Y: pos.Y, Z: pos.Z})
	})

	netcomponents.NetCharacter.Each(ecs.World, func(e *donburi.Entry) {
		char := components.Character.Get(e)
		attrs := components.Abilities.Get(e).Attributes
		data := netcomponents.NetCharacterData{
			Kind:      char.Kind,
			StateID:   components.State.Get(e).CurrentState,
			Facing:    int(char.Facing.Facing()),
			Animation: char.Animation.String(),
			PlayRate:  char.Animation.PlayRate,
			OffsetX:   char.PresentationOffset.X,
			OffsetY:   char.PresentationOffset.Y,
			ScaleZ:    components.Sprite.Get(e).Scale.Z,
			Health:    attrs.Health(),
			MaxHealth: attrs.MaxHealth(),
		}
		netcomponents.NetCharacter.SetValue(e, data)
	})

	arenaEntry, ok := netcomponents.NetArena.First(ecs.World)
	if !ok {
		return
	}
	var stats netcomponents.NetArenaData
	if clock, ok := components.Clock.First(ecs.World); ok {
		stats.Tick = components.Clock.Get(clock).Tick
	}
	if arenaEntry.HasComponent(components.Arena) {
		stats.Kills = components.Arena.Get(arenaEntry).Kills
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			stats.PlayersAlive++
		}
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			stats.EnemiesAlive++
		}
	})
	netcomponents.NetArena.SetValue(arenaEntry, stats)
}
