package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashData flattens a sprite along Z.
type SquashData struct {
	Tween *gween.Tween
}

var Squash = donburi.NewComponentType[SquashData]()
