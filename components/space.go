package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the singleton collision space holding every character, wall and
// pickup object.
var Space = donburi.NewComponentType[resolv.Space]()
