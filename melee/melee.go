// Package melee resolves a punch against the characters around it.
package melee

import (
	"github.com/captainzonks/hopper/ability"
	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// AttackEvent is one connected punch.
type AttackEvent struct {
	Instigator *donburi.Entry
	Target     *donburi.Entry
	Origin     gamemath.Vec3
	Force      float64
}

type Result struct {
	HitCount int
	Hits     []AttackEvent
}

type Resolver struct {
	Log *zap.Logger
}

func NewResolver(log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{Log: log}
}

// ResolvePunch launches every qualifying candidate away from origin and
// reports the outcome to the instigator's ability system: one Weapon.Hit per
// target, or a single Weapon.NoHit when nothing qualified. Damage is left to
// whoever listens for the hit. Candidates are taken as already in reach;
// Overlap gathers them for radius. A candidate listed twice is hit once.
func (r *Resolver) ResolvePunch(instigator *donburi.Entry, origin gamemath.Vec3, radius float64, candidates []*donburi.Entry, force float64) Result {
	var res Result
	if instigator == nil || !instigator.Valid() {
		r.Log.Warn("melee: nil instigator")
		return res
	}

	hostile := hostileMarker(instigator)
	seen := make(map[donburi.Entity]struct{}, len(candidates))
	for _, target := range candidates {
		if !r.qualifies(instigator, target, hostile) {
			continue
		}
		if _, dup := seen[target.Entity()]; dup {
			continue
		}
		seen[target.Entity()] = struct{}{}
		launch(target, origin, force)
		res.Hits = append(res.Hits, AttackEvent{
			Instigator: instigator,
			Target:     target,
			Origin:     origin,
			Force:      force,
		})
	}
	res.HitCount = len(res.Hits)

	sys := abilitySystem(instigator)
	if sys == nil {
		r.Log.Warn("melee: instigator has no ability system", zap.Int("hits", res.HitCount))
		return res
	}
	if res.HitCount == 0 {
		sys.SendGameplayEvent(tags.WeaponNoHit, ability.EventData{
			Instigator: instigator,
			Origin:     origin,
			Magnitude:  force,
		})
		return res
	}
	for _, hit := range res.Hits {
		sys.SendGameplayEvent(tags.WeaponHit, ability.EventData{
			Instigator: hit.Instigator,
			Target:     hit.Target,
			Origin:     hit.Origin,
			Magnitude:  hit.Force,
		})
	}
	return res
}

func (r *Resolver) qualifies(instigator, target *donburi.Entry, hostile donburi.IComponentType) bool {
	if target == nil || !target.Valid() || target.Entity() == instigator.Entity() {
		return false
	}
	if hostile == nil || !target.HasComponent(hostile) {
		return false
	}
	if target.HasComponent(components.Abilities) {
		if components.Abilities.Get(target).Tags.HasTag(tags.StatusDead) {
			return false
		}
	}
	return true
}

// hostileMarker is the tag an instigator's targets must carry. Players punch
// enemies and enemies punch players.
func hostileMarker(instigator *donburi.Entry) donburi.IComponentType {
	switch {
	case instigator.HasComponent(tags.Player):
		return tags.Enemy
	case instigator.HasComponent(tags.Enemy):
		return tags.Player
	}
	return nil
}

func abilitySystem(e *donburi.Entry) *ability.System {
	if !e.HasComponent(components.Abilities) {
		return nil
	}
	return components.Abilities.Get(e).System
}

func position(e *donburi.Entry) gamemath.Vec3 {
	if !e.HasComponent(components.Object) {
		return gamemath.Vec3{}
	}
	var z float64
	if e.HasComponent(components.Physics) {
		z = components.Physics.Get(e).Z
	}
	return components.Object.Get(e).Center(z)
}

func launch(target *donburi.Entry, origin gamemath.Vec3, force float64) {
	if !target.HasComponent(components.Physics) {
		return
	}
	physics := components.Physics.Get(target)
	if physics.Disabled {
		return
	}
	dir := gamemath.DirectionUnit(origin, position(target))
	physics.Velocity = physics.Velocity.Add(gamemath.PunchLaunch(dir, force))
	physics.Airborne = true
}

// Overlap returns the characters whose collision boxes touch the circle of
// radius around origin.
func Overlap(space *resolv.Space, origin gamemath.Vec3, radius float64) []*donburi.Entry {
	if space == nil || radius <= 0 {
		return nil
	}
	probe := resolv.NewObject(origin.X-radius, origin.Y-radius, radius*2, radius*2)
	probe.SetShape(resolv.NewRectangle(0, 0, radius*2, radius*2))
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvCharacter)
	if check == nil {
		return nil
	}
	seen := make(map[donburi.Entity]struct{}, len(check.Objects))
	var out []*donburi.Entry
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if _, dup := seen[entry.Entity()]; dup {
			continue
		}
		if !touches(obj, origin, radius) {
			continue
		}
		seen[entry.Entity()] = struct{}{}
		out = append(out, entry)
	}
	return out
}

// touches reports whether the point of obj's box nearest origin lies within
// radius on the ground plane.
func touches(obj *resolv.Object, origin gamemath.Vec3, radius float64) bool {
	nearest := gamemath.Vec3{
		X: max(obj.X, min(origin.X, obj.X+obj.W)),
		Y: max(obj.Y, min(origin.Y, obj.Y+obj.H)),
	}
	return gamemath.Distance2D(origin, nearest) <= radius
}
