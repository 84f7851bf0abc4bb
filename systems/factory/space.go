package factory

import (
	"github.com/captainzonks/hopper/archetypes"
	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/timer"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateClock returns the world's clock, creating it on first use.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	if e, ok := components.Clock.First(ecs.World); ok {
		return e
	}
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Timers: timer.NewManager()})
	return clock
}

// Timers returns the timer manager every gate and delayed callback shares.
func Timers(ecs *ecs.ECS) *timer.Manager {
	return components.Clock.Get(CreateClock(ecs)).Timers
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
