package tags

import (
	"github.com/captainzonks/hopper/shared/gameplaytag"
	"github.com/yohamta/donburi"
)

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Wall   = donburi.NewTag().SetName("Wall")
	Pickup = donburi.NewTag().SetName("Pickup")
)

// Resolv tags for overlap queries
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvPickup    = "pickup"
)

// Gameplay tags routed through the ability system
const (
	WeaponHit    gameplaytag.Tag = "Weapon.Hit"
	WeaponNoHit  gameplaytag.Tag = "Weapon.NoHit"
	StatusDead   gameplaytag.Tag = "Gameplay.Status.IsDead"
	CuePunched   gameplaytag.Tag = "GameplayCue.Punched"
	AbilityPunch gameplaytag.Tag = "Ability.Punch"
)
