package systems

import (
	"math"
	"math/rand"

	"github.com/captainzonks/hopper/components"
	cfg "github.com/captainzonks/hopper/config"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/tags"
	"github.com/yohamta/donburi"
)

// BotState is what a player bot is currently doing.
type BotState int

const (
	BotStateIdle BotState = iota
	BotStateChase
	BotStateAttack
	BotStateStomp
	BotStateRetreat
)

// PlayerBot drives a player without a human: it picks the nearest enemy,
// walks up and punches it, finishes weakened enemies with a jump and backs
// off when its own health runs low.
type PlayerBot struct {
	State BotState

	target    donburi.Entity
	hasTarget bool
	elapsed   float64
	decideAt  float64
	rng       *rand.Rand
}

// NewPlayerBot returns a bot whose choices are reproducible for seed.
func NewPlayerBot(seed int64) *PlayerBot {
	return &PlayerBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *PlayerBot) Next(w donburi.World, self *donburi.Entry) components.Intent {
	tuning := cfg.Bot.Current()
	b.elapsed += deltaTime(w)

	origin := entityPosition(self)
	target := b.currentTarget(w)

	// State machine with reaction delay
	if target == nil || b.elapsed >= b.decideAt {
		target = b.pickTarget(w, origin, tuning.ChaseRange)
		b.updateState(self, target, origin, tuning)
		b.decideAt = b.elapsed + tuning.ReactionDelay.Seconds()
	}
	if target == nil {
		b.State = BotStateIdle
		return components.Intent{}
	}

	to := entityPosition(target).Sub(origin)
	to.Z = 0
	control := components.Control.Get(self)
	physics := components.Physics.Get(self)

	switch b.State {
	case BotStateRetreat:
		return components.Intent{Move: to.Scale(-1).SafeNormal()}
	case BotStateAttack:
		return components.Intent{Move: to.SafeNormal().Scale(0.2), Punch: !control.Previous.Punch}
	case BotStateStomp:
		// Jump from just short of the target and drift onto it
		jump := !physics.Airborne && to.Size2D() <= tuning.AttackRange && !control.Previous.Jump
		return components.Intent{Move: to.SafeNormal(), Jump: jump}
	case BotStateChase:
		return components.Intent{Move: heading(w, origin, entityPosition(target))}
	}
	return components.Intent{}
}

func (b *PlayerBot) currentTarget(w donburi.World) *donburi.Entry {
	if !b.hasTarget || !w.Valid(b.target) {
		b.hasTarget = false
		return nil
	}
	e := w.Entry(b.target)
	if !attackable(e) {
		b.hasTarget = false
		return nil
	}
	return e
}

func (b *PlayerBot) pickTarget(w donburi.World, origin gamemath.Vec3, chaseRange float64) *donburi.Entry {
	var nearest *donburi.Entry
	nearestDist := math.MaxFloat64
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if !attackable(e) {
			return
		}
		d := gamemath.Distance2D(origin, entityPosition(e))
		if d <= chaseRange && d < nearestDist {
			nearest, nearestDist = e, d
		}
	})
	b.hasTarget = nearest != nil
	if nearest != nil {
		b.target = nearest.Entity()
	}
	return nearest
}

func (b *PlayerBot) updateState(self, target *donburi.Entry, origin gamemath.Vec3, tuning cfg.BotDifficultyConfig) {
	if target == nil {
		b.State = BotStateIdle
		return
	}
	attrs := components.Abilities.Get(self).Attributes
	if attrs.MaxHealth() > 0 && attrs.Health()/attrs.MaxHealth() < tuning.RetreatThreshold {
		b.State = BotStateRetreat
		return
	}

	targetAttrs := components.Abilities.Get(target).Attributes
	weakened := targetAttrs.MaxHealth() > 0 && targetAttrs.Health()/targetAttrs.MaxHealth() <= 0.5
	if weakened && b.rng.Float64() < 0.5 {
		b.State = BotStateStomp
		return
	}

	if gamemath.Distance2D(origin, entityPosition(target)) < tuning.AttackRange {
		b.State = BotStateAttack
		return
	}
	b.State = BotStateChase
}

func attackable(e *donburi.Entry) bool {
	if !e.Valid() || e.HasComponent(components.Death) {
		return false
	}
	if e.HasComponent(components.Enemy) && components.Enemy.Get(e).Squashed {
		return false
	}
	return !components.Abilities.Get(e).Attributes.IsDead()
}
