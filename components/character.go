package components

import (
	"time"

	"github.com/captainzonks/hopper/ability"
	"github.com/captainzonks/hopper/direction"
	"github.com/captainzonks/hopper/gate"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/shared/netconfig"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	Kind     netconfig.CharacterKind
	Facing   *direction.Resolver
	Attack   *gate.Gate
	Footstep *gate.Gate
	Punch    *ability.Ability

	AttackDuration time.Duration
	Animation      direction.AnimationKey

	// PresentationOffset nudges the sprite toward the facing direction while
	// punching.
	PresentationOffset gamemath.Vec3
}

var Character = donburi.NewComponentType[CharacterData]()

// MeleeData is the punch shape for one character.
type MeleeData struct {
	Radius float64
	Force  float64
	Damage float64
}

var Melee = donburi.NewComponentType[MeleeData]()
