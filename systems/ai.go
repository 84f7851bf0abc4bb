package systems

import (
	"math"

	"github.com/captainzonks/hopper/components"
	cfg "github.com/captainzonks/hopper/config"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// entityPosition is the center of e's collision box at its current height.
func entityPosition(e *donburi.Entry) gamemath.Vec3 {
	var z float64
	if e.HasComponent(components.Physics) {
		z = components.Physics.Get(e).Z
	}
	if !e.HasComponent(components.Object) {
		return gamemath.Vec3{Z: z}
	}
	return components.Object.Get(e).Center(z)
}

// heading is the unit direction on the ground plane from from toward to,
// routed around walls when the arena has a nav grid.
func heading(w donburi.World, from, to gamemath.Vec3) gamemath.Vec3 {
	if arenaEntry, ok := components.Arena.First(w); ok {
		if nav := components.Arena.Get(arenaEntry).Nav; nav != nil {
			to = nav.NextWaypoint(from, to)
		}
	}
	d := to.Sub(from)
	d.Z = 0
	return d.SafeNormal()
}

// SenseTarget updates enemy's blackboard with one perception result. Only
// players are chased; losing sight of anything clears the spotted flag.
func SenseTarget(enemy, target *donburi.Entry, sensed bool) {
	if !enemy.Valid() || !enemy.HasComponent(components.Enemy) {
		return
	}
	bb := &components.Enemy.Get(enemy).Blackboard
	if !sensed {
		bb.PlayerSpotted = false
		return
	}
	if target == nil || !target.Valid() || !target.HasComponent(tags.Player) {
		return
	}
	bb.PlayerSpotted = true
	bb.TargetLocation = entityPosition(target)
	bb.TargetActor = target.Entity()
}

// UpdatePerception gives every enemy sight of the nearest living player.
// A player already spotted stays visible out to the lose sight radius.
func UpdatePerception(ecs *ecs.ECS) {
	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			players = append(players, e)
		}
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.AIStopped || e.HasComponent(components.Death) {
			return
		}
		origin := entityPosition(e)

		var nearest *donburi.Entry
		nearestDist := math.MaxFloat64
		for _, p := range players {
			d := gamemath.Distance2D(origin, entityPosition(p))
			if d < nearestDist {
				nearest, nearestDist = p, d
			}
		}
		if nearest == nil {
			if enemy.Blackboard.PlayerSpotted {
				SenseTarget(e, nil, false)
			}
			return
		}

		radius := cfg.Perception.SightRadius
		if enemy.Blackboard.PlayerSpotted {
			radius = cfg.Perception.LoseSightRadius
		}
		sensed := nearestDist <= radius
		if sensed || enemy.Blackboard.PlayerSpotted {
			SenseTarget(e, nearest, sensed)
		}
	})
}

// EnemyBrain chases the target on the blackboard and punches once in range.
type EnemyBrain struct{}

func (EnemyBrain) Next(w donburi.World, self *donburi.Entry) components.Intent {
	enemy := components.Enemy.Get(self)
	bb := enemy.Blackboard
	if enemy.AIStopped || !bb.PlayerSpotted {
		return components.Intent{}
	}
	origin := entityPosition(self)
	if gamemath.Distance2D(origin, bb.TargetLocation) <= enemy.AttackRange {
		// Release between presses so every swing is a fresh press
		return components.Intent{Punch: !components.Control.Get(self).Previous.Punch}
	}
	return components.Intent{Move: heading(w, origin, bb.TargetLocation)}
}
