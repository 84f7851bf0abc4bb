package systems

import (
	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/events"
	"github.com/captainzonks/hopper/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceClock starts a new tick of dt seconds.
func AdvanceClock(ecs *ecs.ECS, dt float64) {
	clock := components.Clock.Get(factory.CreateClock(ecs))
	clock.Dt = dt
	clock.Tick++
}

func deltaTime(w donburi.World) float64 {
	if e, ok := components.Clock.First(w); ok {
		return components.Clock.Get(e).Dt
	}
	return 0
}

// UpdateTimers fires every timer that expires this tick.
func UpdateTimers(ecs *ecs.ECS) {
	e, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(e)
	clock.Timers.Update(clock.Dt)
}

// ProcessEvents delivers the notifications queued during the tick.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAll(ecs.World)
}
