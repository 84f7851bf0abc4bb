package systems

import (
	"github.com/captainzonks/hopper/components"
	cfg "github.com/captainzonks/hopper/config"
	"github.com/captainzonks/hopper/direction"
	"github.com/captainzonks/hopper/events"
	"github.com/captainzonks/hopper/inventory"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/systems/factory"
	"github.com/captainzonks/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SoulToken is dropped where an enemy dies.
var SoulToken = inventory.PrimaryAssetID{Type: inventory.TokenType, Name: "Soul"}

// RegisterEventHandlers subscribes the systems that react to notifications.
// Call it once per world.
func RegisterEventHandlers(ecs *ecs.ECS) {
	events.DiedEvent.Subscribe(ecs.World, func(w donburi.World, ev events.Died) {
		onDied(ecs, ev)
	})
	events.HealthChangedEvent.Subscribe(ecs.World, func(w donburi.World, ev events.HealthChanged) {
		logger.Debug("attribute changed",
			zap.Int("entity", int(ev.Entity.Id())),
			zap.Stringer("attribute", ev.Attribute),
			zap.Float64("old", ev.Old),
			zap.Float64("new", ev.New))
	})
}

func onDied(ecs *ecs.ECS, ev events.Died) {
	w := ecs.World
	if !w.Valid(ev.Entity) {
		return
	}
	e := w.Entry(ev.Entity)

	abilities := components.Abilities.Get(e)
	abilities.System.CancelAllAbilities()
	if e.HasComponent(components.Character) {
		char := components.Character.Get(e)
		char.Attack.Reset()
		char.Footstep.Reset()
	}
	if !e.HasComponent(components.Death) {
		donburi.Add(e, components.Death, &components.DeathData{
			Timer:     cfg.Sim.DeathDelay,
			Killer:    ev.Killer,
			HasKiller: ev.HasKiller,
		})
	}

	if ev.HasKiller && w.Valid(ev.Killer) {
		if killer := w.Entry(ev.Killer); killer.HasComponent(components.Player) {
			components.Player.Get(killer).Kills++
		}
	}

	var arena *components.ArenaData
	if arenaEntry, ok := components.Arena.First(w); ok {
		arena = components.Arena.Get(arenaEntry)
	}
	if e.HasComponent(tags.Enemy) {
		if arena != nil {
			arena.Kills++
			dropSoul(ecs, arena, entityPosition(e))
		}
	} else if arena != nil {
		arena.Deaths++
	}

	logger.Info("character died",
		zap.Int("entity", int(ev.Entity.Id())),
		zap.Bool("player", e.HasComponent(tags.Player)),
		zap.Bool("has_killer", ev.HasKiller))
}

func dropSoul(ecs *ecs.ECS, arena *components.ArenaData, at gamemath.Vec3) {
	if arena.Assets == nil {
		return
	}
	soul := arena.Assets.ForceLoadItem(SoulToken, true)
	if soul == nil {
		return
	}
	factory.CreatePickup(ecs, at.X, at.Y, soul, 1)
}

// UpdateDeaths counts down every death sequence. Players with lives left
// respawn; everyone else is removed from the arena.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	var expired []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		if e.HasComponent(components.Player) && Respawn(ecs, e) {
			continue
		}
		RemoveCharacter(ecs, e)
	}
}

// Respawn spends one of the player's lives and puts it back at its spawn at
// full health. It reports false when no lives are left.
func Respawn(ecs *ecs.ECS, e *donburi.Entry) bool {
	player := components.Player.Get(e)
	player.Lives--
	if player.Lives <= 0 {
		return false
	}
	spawn, name, lives := player.Spawn, player.Name, player.Lives

	donburi.Remove[components.DeathData](e, components.Death)

	obj := components.Object.Get(e)
	obj.X, obj.Y = spawn.X-obj.W/2, spawn.Y-obj.H/2
	obj.Update()

	physics := components.Physics.Get(e)
	physics.Velocity = gamemath.Vec3{}
	physics.Z = 0
	physics.Airborne = false
	resetGravity(physics)
	if e.HasComponent(components.Jump) {
		timers := factory.Timers(ecs)
		timers.ClearTimer(&components.Jump.Get(e).Reset)
		resetJumpPower(e)
	}

	char := components.Character.Get(e)
	char.Attack.Reset()
	char.Footstep.Reset()
	char.PresentationOffset = gamemath.Vec3{}
	char.Animation = direction.Animation(char.Facing.Facing(), 0, false)
	components.Sprite.Get(e).Offset = gamemath.Vec3{}

	components.Abilities.Get(e).Attributes.Revive()
	logger.Info("player respawned",
		zap.String("name", name),
		zap.Int("lives", lives))
	return true
}

// RemoveCharacter takes e out of the collision space and the world.
func RemoveCharacter(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Abilities) {
		components.Abilities.Get(e).System.CancelAllAbilities()
	}
	if e.HasComponent(components.Enemy) {
		factory.Timers(ecs).ClearTimer(&components.Enemy.Get(e).Destroy)
	}
	if e.HasComponent(components.Jump) {
		factory.Timers(ecs).ClearTimer(&components.Jump.Get(e).Reset)
	}
	if e.HasComponent(components.Character) {
		char := components.Character.Get(e)
		char.Attack.Reset()
		char.Footstep.Reset()
	}
	if obj := components.Object.Get(e); obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	ecs.World.Remove(e.Entity())
}
