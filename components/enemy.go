package components

import (
	"time"

	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/timer"
	"github.com/yohamta/donburi"
)

// Blackboard holds what an enemy's perception last reported.
type Blackboard struct {
	PlayerSpotted  bool
	TargetLocation gamemath.Vec3
	TargetActor    donburi.Entity
}

type EnemyData struct {
	Blackboard Blackboard

	ChaseSpeed      float64
	AttackRange     float64
	VelocityToKill  float64
	TimeTillDestroy time.Duration

	Squashed  bool
	AIStopped bool
	Destroy   timer.Handle
}

var Enemy = donburi.NewComponentType[EnemyData]()
