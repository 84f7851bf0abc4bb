package factory

import (
	"github.com/captainzonks/hopper/archetypes"
	"github.com/captainzonks/hopper/components"
	cfg "github.com/captainzonks/hopper/config"
	"github.com/captainzonks/hopper/shared/netconfig"
	"github.com/captainzonks/hopper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateEnemy spawns an enemy driven by source.
func CreateEnemy(ecs *ecs.ECS, x, y float64, source components.InputSource, log *zap.Logger) *donburi.Entry {
	if log == nil {
		log = zap.NewNop()
	}
	enemy := archetypes.Enemy.Spawn(ecs)

	setupCharacter(ecs, enemy, characterSpec{
		kind:        netconfig.KindEnemy,
		x:           x,
		y:           y,
		resolvTag:   tags.ResolvEnemy,
		maxHealth:   cfg.Enemy.MaxHealth,
		attackPower: cfg.Character.AttackPower,
		maxSpeed:    cfg.Enemy.ChaseSpeed,
		source:      source,
		log:         log.With(zap.Int("enemy", int(enemy.Entity().Id()))),
	})

	components.Enemy.SetValue(enemy, components.EnemyData{
		ChaseSpeed:      cfg.Enemy.ChaseSpeed,
		AttackRange:     cfg.Enemy.AttackRange,
		VelocityToKill:  cfg.Enemy.VelocityToKill,
		TimeTillDestroy: cfg.Enemy.TimeTillDestroy,
	})

	return enemy
}
