package systems

import (
	"github.com/captainzonks/hopper/attributes"
	"github.com/captainzonks/hopper/components"
	cfg "github.com/captainzonks/hopper/config"
	"github.com/captainzonks/hopper/events"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/systems/factory"
	"github.com/captainzonks/hopper/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const squashTweenSeconds = 0.1

// IsSquashingHit reports whether a hit whose normal points from the enemy
// toward the attacker comes steeply enough from above.
func IsSquashingHit(hitNormal gamemath.Vec3, velocityToKill float64) bool {
	return hitNormal.SafeNormal().Z > velocityToKill
}

// UpdateStomps squashes enemies that a descending player lands on.
func UpdateStomps(ecs *ecs.ECS) {
	type stomp struct{ enemy, player *donburi.Entry }
	var stomps []stomp

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		if !physics.Airborne || physics.Velocity.Z >= 0 || physics.Z > cfg.Character.CapsuleRadius*2 {
			return
		}
		check := components.Object.Get(e).Check(0, 0, tags.ResolvEnemy)
		if check == nil {
			return
		}
		for _, obj := range check.Objects {
			enemy, ok := obj.Data.(*donburi.Entry)
			if !ok || !enemy.Valid() || !enemy.HasComponent(components.Enemy) {
				continue
			}
			normal := entityPosition(e).Sub(entityPosition(enemy))
			if IsSquashingHit(normal, components.Enemy.Get(enemy).VelocityToKill) {
				stomps = append(stomps, stomp{enemy: enemy, player: e})
			}
		}
	})

	for _, s := range stomps {
		Squash(ecs, s.enemy, s.player)
	}
}

// Squash flattens enemy: its collision is turned off, its AI stops and it
// dies once its time till destroy runs out.
func Squash(ecs *ecs.ECS, enemy, by *donburi.Entry) bool {
	if !enemy.Valid() || enemy.HasComponent(components.Death) {
		return false
	}
	data := components.Enemy.Get(enemy)
	if data.Squashed || components.Abilities.Get(enemy).Attributes.IsDead() {
		return false
	}
	data.Squashed = true
	data.AIStopped = true
	destroyAfter := data.TimeTillDestroy

	physics := components.Physics.Get(enemy)
	physics.Disabled = true
	physics.Velocity = gamemath.Vec3{}
	if obj := components.Object.Get(enemy); obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}

	sprite := components.Sprite.Get(enemy)
	sprite.Offset.Z = cfg.Enemy.SquashOffset
	donburi.Add(enemy, components.Squash, &components.SquashData{
		Tween: gween.New(float32(sprite.Scale.Z), float32(sprite.Scale.Z)/2, squashTweenSeconds, ease.OutQuad),
	})

	squashedBy, _ := events.EntityOf(by)
	events.SquashedEvent.Publish(ecs.World, events.Squashed{Entity: enemy.Entity(), By: squashedBy})
	logger.Debug("enemy squashed", zap.Int("enemy", int(enemy.Entity().Id())))

	timers := factory.Timers(ecs)
	timers.SetTimer(&components.Enemy.Get(enemy).Destroy, destroyAfter, func() {
		killSquashed(enemy, by)
	})
	return true
}

func killSquashed(enemy, by *donburi.Entry) {
	if !enemy.Valid() {
		return
	}
	killer, hasKiller := events.EntityOf(by)
	if !enemy.HasComponent(components.Death) {
		donburi.Add(enemy, components.Death, &components.DeathData{Killer: killer, HasKiller: hasKiller})
	}
	var instigator *donburi.Entry
	if hasKiller {
		instigator = by
	}
	components.Abilities.Get(enemy).Attributes.SetFrom(attributes.Health, 0, instigator)
}

// UpdateSquash plays the flatten tween.
func UpdateSquash(ecs *ecs.ECS) {
	dt := float32(deltaTime(ecs.World))
	components.Squash.Each(ecs.World, func(e *donburi.Entry) {
		squash := components.Squash.Get(e)
		if squash.Tween == nil {
			return
		}
		value, done := squash.Tween.Update(dt)
		components.Sprite.Get(e).Scale.Z = float64(value)
		if done {
			squash.Tween = nil
		}
	})
}
