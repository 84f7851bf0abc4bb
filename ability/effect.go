package ability

import (
	"github.com/captainzonks/hopper/attributes"
	"github.com/captainzonks/hopper/shared/gameplaytag"
	"github.com/captainzonks/hopper/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

type ModOp int

const (
	OpAdd ModOp = iota
	OpOverride
)

type Modifier struct {
	Attribute attributes.Attribute
	Op        ModOp
	Magnitude float64
}

// Effect is an instant change to attributes plus the cues it triggers.
type Effect struct {
	Name      string
	Modifiers []Modifier
	Cues      []gameplaytag.Tag
}

// DefaultPunchDamage is the damage dealt by DamageEffect.
const DefaultPunchDamage = 35.0

// DamageEffect is the effect applied to a target hit by a punch.
func DamageEffect() Effect {
	return Effect{
		Name: "Damage",
		Modifiers: []Modifier{
			{Attribute: attributes.Damage, Op: OpOverride, Magnitude: DefaultPunchDamage},
		},
		Cues: []gameplaytag.Tag{tags.CuePunched},
	}
}

// ApplyEffect applies every modifier of e to target. Damage modifiers go
// through the damage meta attribute. It reports false when target is nil or
// not initialized.
func ApplyEffect(target *attributes.Controller, e Effect, instigator *donburi.Entry) bool {
	if target == nil || !target.Initialized() {
		return false
	}
	for _, m := range e.Modifiers {
		if m.Attribute == attributes.Damage {
			target.ApplyDamage(m.Magnitude, instigator)
			continue
		}
		value := m.Magnitude
		if m.Op == OpAdd {
			value += target.Get(m.Attribute)
		}
		target.SetFrom(m.Attribute, value, instigator)
	}
	return true
}

// ApplyEffectToTarget applies e to target on behalf of s and fires the
// effect's cues on target.
func (s *System) ApplyEffectToTarget(target *System, e Effect) bool {
	if target == nil {
		s.Log.Warn("ability: effect without target", zap.String("effect", e.Name))
		return false
	}
	if !ApplyEffect(target.Attributes, e, s.Owner) {
		s.Log.Warn("ability: effect not applied", zap.String("effect", e.Name))
		return false
	}
	target.executeCues(e.Cues, s.Owner)
	return true
}

func (s *System) ApplyEffectToSelf(e Effect) bool {
	return s.ApplyEffectToTarget(s, e)
}

func (s *System) executeCues(cues []gameplaytag.Tag, instigator *donburi.Entry) {
	if s.OnCue == nil {
		return
	}
	for _, cue := range cues {
		s.OnCue(cue, instigator)
	}
}
