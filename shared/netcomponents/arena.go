package netcomponents

import "github.com/yohamta/donburi"

type NetArenaData struct {
	Tick         uint64
	PlayersAlive int
	EnemiesAlive int
	Kills        int
}

var NetArena = donburi.NewComponentType[NetArenaData]()
