package systems

import (
	"testing"

	"github.com/captainzonks/hopper/attributes"
	"github.com/captainzonks/hopper/components"
)

func TestPlayerBotIdleWithoutEnemies(t *testing.T) {
	e := newTestECS(t)
	bot := NewPlayerBot(1)
	player := newPlayer(e, 1000, 1000, bot)

	tick(e, 1.0/60)
	if got := components.Control.Get(player).Intent; got != (components.Intent{}) {
		t.Errorf("intent = %+v, want none", got)
	}
	if bot.State != BotStateIdle {
		t.Errorf("State = %v, want idle", bot.State)
	}
}

func TestPlayerBotStates(t *testing.T) {
	tests := []struct {
		name       string
		enemyX     float64
		selfHealth float64
		want       BotState
	}{
		{"chase", 1800, 100, BotStateChase},
		{"attack", 1100, 100, BotStateAttack},
		{"retreat", 1100, 20, BotStateRetreat},
		{"out of range", 3000, 100, BotStateIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			bot := NewPlayerBot(1)
			player := newPlayer(e, 1000, 1000, bot)
			components.Abilities.Get(player).Attributes.Set(attributes.Health, tt.selfHealth)
			newEnemy(e, tt.enemyX, 1000)

			AdvanceClock(e, 1.0/60)
			intent := bot.Next(e.World, player)
			if bot.State != tt.want {
				t.Fatalf("State = %v, want %v", bot.State, tt.want)
			}
			switch tt.want {
			case BotStateChase:
				if intent.Move.X <= 0 {
					t.Errorf("chase intent = %+v, want toward +X", intent)
				}
			case BotStateAttack:
				if !intent.Punch {
					t.Errorf("attack intent = %+v, want punch", intent)
				}
			case BotStateRetreat:
				if intent.Move.X >= 0 {
					t.Errorf("retreat intent = %+v, want away along -X", intent)
				}
			}
		})
	}
}

func TestPlayerBotFightsIdleEnemy(t *testing.T) {
	e := newTestECS(t)
	newPlayer(e, 1000, 1000, NewPlayerBot(7))
	enemy := newEnemy(e, 1400, 1000)
	entity := enemy.Entity()

	for i := 0; i < 60*10; i++ {
		tick(e, 1.0/60)
	}
	if e.World.Valid(entity) && health(enemy) >= 100 {
		t.Error("bot never landed a punch in 10s")
	}
}
