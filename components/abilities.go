package components

import (
	"github.com/captainzonks/hopper/ability"
	"github.com/captainzonks/hopper/attributes"
	"github.com/captainzonks/hopper/shared/gameplaytag"
	"github.com/yohamta/donburi"
)

// AbilitiesData bundles the ability system with the attributes and owner
// tags it shares.
type AbilitiesData struct {
	System     *ability.System
	Attributes *attributes.Controller
	Tags       *gameplaytag.Container
}

var Abilities = donburi.NewComponentType[AbilitiesData]()
