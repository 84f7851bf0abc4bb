package factory

import (
	"github.com/captainzonks/hopper/ability"
	"github.com/captainzonks/hopper/attributes"
	"github.com/captainzonks/hopper/components"
	cfg "github.com/captainzonks/hopper/config"
	"github.com/captainzonks/hopper/direction"
	"github.com/captainzonks/hopper/events"
	"github.com/captainzonks/hopper/gate"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/shared/gameplaytag"
	"github.com/captainzonks/hopper/shared/netconfig"
	"github.com/captainzonks/hopper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

type characterSpec struct {
	kind        netconfig.CharacterKind
	x, y        float64
	resolvTag   string
	maxHealth   float64
	attackPower float64
	maxSpeed    float64
	source      components.InputSource
	log         *zap.Logger
}

// setupCharacter fills the components players and enemies share and starts
// the ability system.
func setupCharacter(ecs *ecs.ECS, e *donburi.Entry, spec characterSpec) {
	timers := Timers(ecs)

	r := cfg.Character.CapsuleRadius
	obj := resolv.NewObject(spec.x-r, spec.y-r, r*2, r*2, tags.ResolvCharacter, spec.resolvTag)
	obj.SetShape(resolv.NewRectangle(0, 0, r*2, r*2))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(ecs.World, obj)

	components.Physics.SetValue(e, components.PhysicsData{
		Gravity:      cfg.Movement.Gravity,
		GravityScale: cfg.Movement.GravityScale,
		JumpPower:    JumpPowerLevel(0),
		MaxSpeed:     spec.maxSpeed,
		Acceleration: cfg.Character.Acceleration,
		Friction:     cfg.Character.Friction,
	})
	components.State.SetValue(e, components.StateData{
		CurrentState:  netconfig.Idle,
		PreviousState: netconfig.StateNone,
	})
	components.Sprite.SetValue(e, components.SpriteData{
		Scale: gamemath.Vec3{X: 1, Y: 1, Z: 1},
	})
	components.Control.SetValue(e, components.ControlData{Source: spec.source})
	components.Melee.SetValue(e, components.MeleeData{
		Radius: cfg.Combat.AttackRadius,
		Force:  cfg.Combat.AttackForce,
		Damage: cfg.Combat.PunchDamage,
	})

	facing := direction.NewResolver(direction.BasisFromRotator(gamemath.Rotator{}))
	facing.LateralThreshold = cfg.Character.LateralThreshold
	attack := gate.New(timers)
	attack.OnOpen = func() { EndAttack(e) }
	components.Character.SetValue(e, components.CharacterData{
		Kind:           spec.kind,
		Facing:         facing,
		Attack:         attack,
		Footstep:       gate.New(timers),
		AttackDuration: cfg.Character.AttackDuration,
		Animation:      direction.Animation(facing.Facing(), 0, false),
	})

	owned := gameplaytag.NewContainer()
	attrs := attributes.NewController(owned, spec.log)
	attrs.Init(attributes.AttributeSet{
		Health:    spec.maxHealth,
		MaxHealth: spec.maxHealth,
		Stamina:   cfg.Character.Stamina,
	})
	sys := ability.NewSystem(e, attrs, owned, spec.log)
	bindNotifications(e, attrs, sys)
	components.Abilities.SetValue(e, components.AbilitiesData{
		System:     sys,
		Attributes: attrs,
		Tags:       owned,
	})

	sys.AddStartupAbilities([]gameplaytag.Tag{tags.AbilityPunch}, StartingAttributes(spec.attackPower))
	punch, _ := sys.FindAbility(tags.AbilityPunch)
	components.Character.Get(e).Punch = punch
}

// StartingAttributes is the passive effect applied once when a character's
// abilities start.
func StartingAttributes(attackPower float64) ability.Effect {
	return ability.Effect{
		Name: "StartingAttributes",
		Modifiers: []ability.Modifier{
			{Attribute: attributes.AttackPower, Op: ability.OpOverride, Magnitude: attackPower},
		},
	}
}

func bindNotifications(e *donburi.Entry, attrs *attributes.Controller, sys *ability.System) {
	attrs.OnChanged = func(c attributes.Change) {
		events.HealthChangedEvent.Publish(e.World, events.HealthChanged{
			Entity:    e.Entity(),
			Attribute: c.Attribute,
			Old:       c.Old,
			New:       c.New,
		})
	}
	attrs.OnDeath = func(instigator *donburi.Entry) {
		killer, ok := events.EntityOf(instigator)
		events.DiedEvent.Publish(e.World, events.Died{
			Entity:    e.Entity(),
			Killer:    killer,
			HasKiller: ok,
		})
	}
	sys.OnCue = func(cue gameplaytag.Tag, instigator *donburi.Entry) {
		by, ok := events.EntityOf(instigator)
		events.CueEvent.Publish(e.World, events.Cue{
			Tag:           cue,
			Target:        e.Entity(),
			Instigator:    by,
			HasInstigator: ok,
		})
	}
}

// EndAttack runs when the attack gate reopens: the punch nudge is undone and
// listeners are told the attack finished.
func EndAttack(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	char := components.Character.Get(e)
	char.PresentationOffset = gamemath.Vec3{}
	char.Animation = direction.Animation(char.Facing.Facing(), 0, false)
	if e.HasComponent(components.Sprite) {
		components.Sprite.Get(e).Offset = gamemath.Vec3{}
	}
	events.AttackEndedEvent.Publish(e.World, events.AttackEnded{Entity: e.Entity()})
}

// JumpPowerLevel returns the launch speed for the nth consecutive jump,
// falling back to the first level.
func JumpPowerLevel(n int) float64 {
	levels := cfg.Movement.JumpPowerLevels
	if len(levels) == 0 {
		return 0
	}
	if n < 0 || n >= len(levels) {
		return levels[0]
	}
	return levels[n]
}
