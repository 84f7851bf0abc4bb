package systems

import (
	"github.com/captainzonks/hopper/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControl samples every character's input source. Dying characters and
// stopped enemies get an empty intent.
func UpdateControl(ecs *ecs.ECS) {
	components.Control.Each(ecs.World, func(e *donburi.Entry) {
		control := components.Control.Get(e)
		control.Previous = control.Intent
		control.Intent = components.Intent{}

		if control.Source == nil || e.HasComponent(components.Death) {
			return
		}
		if e.HasComponent(components.Enemy) && components.Enemy.Get(e).AIStopped {
			return
		}
		intent := control.Source.Next(ecs.World, e)
		if size := intent.Move.Size2D(); size > 1 {
			intent.Move = intent.Move.Scale(1 / size)
		}
		intent.Move.Z = 0
		control.Intent = intent
	})
}
