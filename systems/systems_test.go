package systems

import (
	"testing"

	"github.com/captainzonks/hopper/archetypes"
	"github.com/captainzonks/hopper/assets"
	"github.com/captainzonks/hopper/components"
	cfg "github.com/captainzonks/hopper/config"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// scripted replays a fixed intent.
type scripted struct {
	intent components.Intent
}

func (s *scripted) Next(donburi.World, *donburi.Entry) components.Intent { return s.intent }

var pipeline = []func(*ecs.ECS){
	UpdatePerception,
	UpdateControl,
	UpdatePhysics,
	UpdateFacing,
	UpdateStomps,
	UpdatePunch,
	UpdatePickups,
	UpdateTimers,
	UpdateSquash,
	UpdateStates,
	UpdateDeaths,
	ProcessEvents,
	UpdateNetSync,
}

// newTestECS builds an empty open floor with a clock and collision space.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	factory.CreateSpace(e, 3200, 3200, 64, 64)
	RegisterEventHandlers(e)
	return e
}

// withAssets adds an arena entry backed by the embedded assets, without
// placing the arena's walls or pickups.
func withAssets(t *testing.T, e *ecs.ECS) *components.ArenaData {
	t.Helper()
	manager, err := assets.Open(assets.Embedded(), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	arena := archetypes.Arena.Spawn(e)
	components.Arena.SetValue(arena, components.ArenaData{Assets: manager})
	return components.Arena.Get(arena)
}

func tick(e *ecs.ECS, dt float64) {
	AdvanceClock(e, dt)
	for _, system := range pipeline {
		system(e)
	}
}

func newPlayer(e *ecs.ECS, x, y float64, source components.InputSource) *donburi.Entry {
	return factory.CreatePlayer(e, factory.PlayerOptions{
		Name:   "tester",
		Spawn:  gamemath.Vec3{X: x, Y: y},
		Source: source,
	})
}

func newEnemy(e *ecs.ECS, x, y float64) *donburi.Entry {
	return factory.CreateEnemy(e, x, y, nil, nil)
}

func health(e *donburi.Entry) float64 {
	return components.Abilities.Get(e).Attributes.Health()
}

func moveTo(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X, obj.Y = x-obj.W/2, y-obj.H/2
	obj.Update()
}
