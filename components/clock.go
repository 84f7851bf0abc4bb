package components

import (
	"github.com/captainzonks/hopper/assets"
	"github.com/captainzonks/hopper/navigation"
	"github.com/captainzonks/hopper/timer"
	"github.com/yohamta/donburi"
)

// ClockData is the singleton simulation clock.
type ClockData struct {
	Timers *timer.Manager
	Dt     float64 // Seconds in the current tick
	Tick   uint64
}

var Clock = donburi.NewComponentType[ClockData]()

// ArenaData is the singleton arena state.
type ArenaData struct {
	Layout  *assets.Arena
	Assets  *assets.Manager
	Nav     *navigation.Grid // Nil until the walls are placed
	Kills   int
	Deaths  int
	Spawned int
}

var Arena = donburi.NewComponentType[ArenaData]()
