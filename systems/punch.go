package systems

import (
	"github.com/captainzonks/hopper/ability"
	"github.com/captainzonks/hopper/components"
	cfg "github.com/captainzonks/hopper/config"
	"github.com/captainzonks/hopper/direction"
	"github.com/captainzonks/hopper/melee"
	"github.com/captainzonks/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

func UpdatePunch(ecs *ecs.ECS) {
	var punchers []*donburi.Entry
	components.Control.Each(ecs.World, func(e *donburi.Entry) {
		if components.Control.Get(e).JustPressedPunch() && e.HasComponent(components.Character) {
			punchers = append(punchers, e)
		}
	})
	for _, e := range punchers {
		HandlePunch(ecs.World, e)
	}
}

// HandlePunch runs one punch for e. The attack gate closes before anything
// else happens, so a punch cannot re-enter itself. Hits apply the punch
// damage effect to their target; a miss ends the ability cleanly. The gate
// reopens after the character's attack duration.
func HandlePunch(w donburi.World, e *donburi.Entry) bool {
	if !e.Valid() || e.HasComponent(components.Death) {
		return false
	}
	char := components.Character.Get(e)
	abilities := components.Abilities.Get(e)
	if !char.Attack.TryEnter() {
		return false
	}
	punch, ok := abilities.System.TryActivateAbility(tags.AbilityPunch)
	if !ok {
		char.Attack.Reset()
		return false
	}

	facing := char.Facing.Facing()
	offset := direction.PunchOffset(facing)
	char.PresentationOffset = offset
	char.Animation = direction.PunchAnimation(facing)
	if e.HasComponent(components.Sprite) {
		components.Sprite.Get(e).Offset = offset
	}

	shape := *components.Melee.Get(e)
	system := abilities.System
	damage := punchDamage(shape.Damage, abilities.Attributes.AttackPower())

	task := ability.Subscribe(punch, tags.WeaponHit, tags.WeaponNoHit, nil, false, true)
	task.OnSuccess = func(data ability.EventData) {
		target := data.Target
		if target == nil || !target.Valid() || !target.HasComponent(components.Abilities) {
			return
		}
		system.ApplyEffectToTarget(components.Abilities.Get(target).System, damage)
	}
	task.OnFailed = func(ability.EventData) {
		logger.Debug("punch missed", zap.Int("entity", int(e.Entity().Id())))
	}

	origin := entityPosition(e)
	var candidates []*donburi.Entry
	if spaceEntry, ok := components.Space.First(w); ok {
		candidates = melee.Overlap(components.Space.Get(spaceEntry), origin, shape.Radius)
	}
	melee.NewResolver(logger).ResolvePunch(e, origin, shape.Radius, candidates, shape.Force)

	punch.End()
	char.Attack.Release(char.AttackDuration)
	return true
}

// punchDamage is the base punch damage plus whatever attack power the
// character holds above the default.
func punchDamage(base, attackPower float64) ability.Effect {
	effect := ability.DamageEffect()
	effect.Modifiers[0].Magnitude = base + max(attackPower-cfg.Character.AttackPower, 0)
	return effect
}
