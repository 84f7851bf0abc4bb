package systems

import (
	"math"
	"testing"

	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/shared/gamemath"
)

func TestSenseTarget(t *testing.T) {
	e := newTestECS(t)
	enemy := newEnemy(e, 1000, 1000)
	player := newPlayer(e, 1500, 1200, nil)
	other := newEnemy(e, 2000, 2000)

	SenseTarget(enemy, other, true)
	if components.Enemy.Get(enemy).Blackboard.PlayerSpotted {
		t.Fatal("chasing a non-player")
	}

	SenseTarget(enemy, player, true)
	bb := components.Enemy.Get(enemy).Blackboard
	if !bb.PlayerSpotted || bb.TargetActor != player.Entity() {
		t.Fatalf("blackboard = %+v, want the player spotted", bb)
	}
	if bb.TargetLocation.X != 1500 || bb.TargetLocation.Y != 1200 {
		t.Errorf("TargetLocation = %+v, want (1500, 1200)", bb.TargetLocation)
	}

	SenseTarget(enemy, nil, false)
	if components.Enemy.Get(enemy).Blackboard.PlayerSpotted {
		t.Error("still spotted after losing sight")
	}
}

func TestUpdatePerceptionHysteresis(t *testing.T) {
	e := newTestECS(t)
	enemy := newEnemy(e, 500, 500)
	player := newPlayer(e, 2100, 500, nil)

	steps := []struct {
		x    float64
		want bool
	}{
		{2100, false}, // 1600 away, outside sight
		{1900, true},  // 1400 away, spotted
		{2300, true},  // 1800 away, still inside lose sight
		{2600, false}, // 2100 away, lost
		{2300, false}, // back to 1800 but has to be seen again
	}
	for _, s := range steps {
		moveTo(player, s.x, 500)
		UpdatePerception(e)
		if got := components.Enemy.Get(enemy).Blackboard.PlayerSpotted; got != s.want {
			t.Errorf("player at x=%v: PlayerSpotted = %v, want %v", s.x, got, s.want)
		}
	}
}

func TestEnemyBrain(t *testing.T) {
	e := newTestECS(t)
	enemy := newEnemy(e, 1000, 1000)
	brain := EnemyBrain{}

	if got := brain.Next(e.World, enemy); got != (components.Intent{}) {
		t.Errorf("idle intent = %+v", got)
	}

	bb := &components.Enemy.Get(enemy).Blackboard
	bb.PlayerSpotted = true
	bb.TargetLocation = gamemath.Vec3{X: 1000, Y: 1600}
	got := brain.Next(e.World, enemy)
	if math.Abs(got.Move.Y-1) > 1e-9 || math.Abs(got.Move.X) > 1e-9 || got.Punch {
		t.Errorf("chase intent = %+v, want straight along +Y", got)
	}

	bb.TargetLocation = gamemath.Vec3{X: 1000, Y: 1100}
	control := components.Control.Get(enemy)
	control.Previous = components.Intent{}
	if got := brain.Next(e.World, enemy); !got.Punch || !got.Move.IsZero() {
		t.Errorf("in range intent = %+v, want punch", got)
	}
	control.Previous = components.Intent{Punch: true}
	if got := brain.Next(e.World, enemy); got.Punch {
		t.Error("punch held across ticks")
	}

	components.Enemy.Get(enemy).AIStopped = true
	if got := brain.Next(e.World, enemy); got != (components.Intent{}) {
		t.Errorf("stopped intent = %+v", got)
	}
}

func TestEnemyChasesAndPunches(t *testing.T) {
	e := newTestECS(t)
	enemy := newEnemy(e, 1000, 1000)
	components.Control.Get(enemy).Source = EnemyBrain{}
	player := newPlayer(e, 1600, 1000, nil)

	for i := 0; i < 180; i++ {
		tick(e, 1.0/60)
	}
	if health(player) >= 100 {
		t.Errorf("player health = %v, want damage from the enemy", health(player))
	}
}
