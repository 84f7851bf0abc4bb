package factory

import (
	"github.com/captainzonks/hopper/archetypes"
	"github.com/captainzonks/hopper/assets"
	"github.com/captainzonks/hopper/components"
	cfg "github.com/captainzonks/hopper/config"
	"github.com/captainzonks/hopper/navigation"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateArena builds the static arena: collision space, walls and pickups.
// Characters are spawned separately by the host.
func CreateArena(ecs *ecs.ECS, manager *assets.Manager, log *zap.Logger) *donburi.Entry {
	if log == nil {
		log = zap.NewNop()
	}
	CreateClock(ecs)

	layout := manager.Arena()
	width, height := cfg.Sim.ArenaWidth, cfg.Sim.ArenaHeight
	if layout != nil && layout.Width > 0 && layout.Height > 0 {
		width, height = layout.Width, layout.Height
	}
	spaceEntry := CreateSpace(ecs, width, height, cfg.Sim.CellSize, cfg.Sim.CellSize)

	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{
		Layout: layout,
		Assets: manager,
	})
	if layout == nil {
		return arena
	}

	for _, wall := range layout.Walls {
		CreateWall(ecs, wall.X, wall.Y, wall.Width, wall.Height)
	}
	cell := float64(cfg.Sim.CellSize)
	clearance := max(cfg.Character.CapsuleRadius-cell/2, 0)
	components.Arena.Get(arena).Nav = navigation.NewGrid(components.Space.Get(spaceEntry), width, height, cell, clearance)

	for _, p := range layout.Pickups {
		item := manager.ForceLoadItem(p.Item, true)
		if item == nil {
			continue
		}
		CreatePickup(ecs, p.X, p.Y, item, p.Count)
	}
	log.Info("arena created",
		zap.String("layout", layout.Name),
		zap.Int("walls", len(layout.Walls)),
		zap.Int("pickups", len(layout.Pickups)))
	return arena
}
