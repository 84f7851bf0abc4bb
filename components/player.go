package components

import (
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Name     string
	Camera   gamemath.Rotator // Orientation used as the facing basis
	Spawn    gamemath.Vec3
	Lives    int
	MaxLives int
	Kills    int
	Bot      bool
}

var Player = donburi.NewComponentType[PlayerData]()
