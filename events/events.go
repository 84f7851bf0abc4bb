// Package events declares the notifications the simulation broadcasts to
// presentation, persistence and scoring. Events are queued on publish and
// delivered when the world's events are processed at the end of a tick.
package events

import (
	"github.com/captainzonks/hopper/attributes"
	"github.com/captainzonks/hopper/direction"
	"github.com/captainzonks/hopper/inventory"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/shared/gameplaytag"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

type HealthChanged struct {
	Entity    donburi.Entity
	Attribute attributes.Attribute
	Old, New  float64
}

type Died struct {
	Entity    donburi.Entity
	Killer    donburi.Entity
	HasKiller bool
}

type Footstep struct {
	Entity   donburi.Entity
	Position gamemath.Vec3
	Facing   direction.Direction
}

type AttackEnded struct {
	Entity donburi.Entity
}

// Cue is a presentation cue raised by an applied effect, e.g. GameplayCue.Punched.
type Cue struct {
	Tag           gameplaytag.Tag
	Target        donburi.Entity
	Instigator    donburi.Entity
	HasInstigator bool
}

type InventoryChanged struct {
	Entity donburi.Entity
	Item   inventory.PrimaryAssetID
	Added  bool
	Count  int
	Level  int
}

type Squashed struct {
	Entity donburi.Entity
	By     donburi.Entity
}

var (
	HealthChangedEvent    = devents.NewEventType[HealthChanged]()
	DiedEvent             = devents.NewEventType[Died]()
	FootstepEvent         = devents.NewEventType[Footstep]()
	AttackEndedEvent      = devents.NewEventType[AttackEnded]()
	CueEvent              = devents.NewEventType[Cue]()
	InventoryChangedEvent = devents.NewEventType[InventoryChanged]()
	SquashedEvent         = devents.NewEventType[Squashed]()
)

// ProcessAll delivers every queued event in w.
func ProcessAll(w donburi.World) {
	devents.ProcessAllEvents(w)
}

// EntityOf returns e's entity, or false for a nil or removed entry.
func EntityOf(e *donburi.Entry) (donburi.Entity, bool) {
	if e == nil || !e.Valid() {
		return donburi.Null, false
	}
	return e.Entity(), true
}
