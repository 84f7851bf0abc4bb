package core

import (
	"errors"

	"github.com/captainzonks/hopper/assets"
	"github.com/captainzonks/hopper/components"
	cfg "github.com/captainzonks/hopper/config"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/systems"
	"github.com/captainzonks/hopper/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var ErrNoAssets = errors.New("core: no asset manager")

// Simulation is one arena and the systems that run it. It is not safe for
// concurrent use; everything runs on the game loop.
type Simulation struct {
	ECS    *ecs.ECS
	Assets *assets.Manager

	log       *zap.Logger
	arena     *donburi.Entry
	nextSpawn int
}

func NewSimulation(manager *assets.Manager, log *zap.Logger) (*Simulation, error) {
	if manager == nil {
		return nil, ErrNoAssets
	}
	if log == nil {
		log = zap.NewNop()
	}
	systems.SetLogger(log)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Perception and control run first so intents exist before movement
	ecs.AddSystem(systems.UpdatePerception)
	ecs.AddSystem(systems.UpdateControl)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateFacing)
	ecs.AddSystem(systems.UpdateStomps)
	ecs.AddSystem(systems.UpdatePunch)
	ecs.AddSystem(systems.UpdatePickups)
	ecs.AddSystem(systems.UpdateTimers)
	ecs.AddSystem(systems.UpdateSquash)
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.ProcessEvents)
	ecs.AddSystem(systems.UpdateNetSync)

	systems.RegisterEventHandlers(ecs)

	s := &Simulation{
		ECS:    ecs,
		Assets: manager,
		log:    log,
	}
	s.arena = factory.CreateArena(ecs, manager, log)
	return s, nil
}

// Step advances the simulation by dt seconds.
func (s *Simulation) Step(dt float64) {
	systems.AdvanceClock(s.ECS, dt)
	s.ECS.Update()
}

// World returns the ECS world
func (s *Simulation) World() donburi.World {
	return s.ECS.World
}

// SpawnPlayer adds a player at the next player spawn point, cycling through
// them. A zero opts.Spawn asks for the next spawn point.
func (s *Simulation) SpawnPlayer(opts factory.PlayerOptions) *donburi.Entry {
	if opts.Spawn.IsZero() {
		opts.Spawn = s.playerSpawn()
	}
	if opts.Log == nil {
		opts.Log = s.log
	}
	player := factory.CreatePlayer(s.ECS, opts)
	components.Arena.Get(s.arena).Spawned++
	s.log.Info("player spawned",
		zap.String("name", opts.Name),
		zap.Bool("bot", opts.Bot),
		zap.Float64("x", opts.Spawn.X),
		zap.Float64("y", opts.Spawn.Y))
	return player
}

func (s *Simulation) playerSpawn() gamemath.Vec3 {
	layout := components.Arena.Get(s.arena).Layout
	if layout == nil || len(layout.PlayerSpawns) == 0 {
		return gamemath.Vec3{X: float64(cfg.Sim.ArenaWidth) / 2, Y: float64(cfg.Sim.ArenaHeight) / 2}
	}
	spawn := layout.PlayerSpawns[s.nextSpawn%len(layout.PlayerSpawns)]
	s.nextSpawn++
	return gamemath.Vec3{X: spawn.X, Y: spawn.Y}
}

// SpawnEnemies places one enemy on every enemy spawn point, or
// config.Enemy.Count enemies spread along the arena's middle when the
// layout has none.
func (s *Simulation) SpawnEnemies() []*donburi.Entry {
	var points []gamemath.Vec3
	if layout := components.Arena.Get(s.arena).Layout; layout != nil {
		for _, sp := range layout.EnemySpawns {
			points = append(points, gamemath.Vec3{X: sp.X, Y: sp.Y})
		}
	}
	if len(points) == 0 {
		w, h := float64(cfg.Sim.ArenaWidth), float64(cfg.Sim.ArenaHeight)
		for i := 0; i < cfg.Enemy.Count; i++ {
			points = append(points, gamemath.Vec3{X: w * float64(i+1) / float64(cfg.Enemy.Count+1), Y: h / 3})
		}
	}

	enemies := make([]*donburi.Entry, 0, len(points))
	for _, p := range points {
		enemies = append(enemies, factory.CreateEnemy(s.ECS, p.X, p.Y, systems.EnemyBrain{}, s.log))
	}
	s.log.Info("enemies spawned", zap.Int("count", len(enemies)))
	return enemies
}

// Summary reports the run so far.
func (s *Simulation) Summary() systems.Summary {
	return systems.Summarize(s.ECS)
}
