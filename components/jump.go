package components

import (
	"github.com/captainzonks/hopper/timer"
	"github.com/yohamta/donburi"
)

// JumpData tracks the consecutive-jump chain.
type JumpData struct {
	Count       int
	Reset       timer.Handle
	WasAirborne bool
}

var Jump = donburi.NewComponentType[JumpData]()
