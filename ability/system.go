// Package ability routes tagged gameplay events to the abilities listening
// for them and applies gameplay effects to attributes.
package ability

import (
	"github.com/captainzonks/hopper/attributes"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/shared/gameplaytag"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// EventData is the payload carried by a gameplay event.
type EventData struct {
	// EventTag is set to the tag that matched when a listener is invoked.
	EventTag   gameplaytag.Tag
	Instigator *donburi.Entry
	Target     *donburi.Entry
	Origin     gamemath.Vec3
	Magnitude  float64
}

// DelegateHandle identifies one registered event delegate.
type DelegateHandle uint64

type exactDelegate struct {
	handle DelegateHandle
	fn     func(EventData)
}

type containerDelegate struct {
	handle DelegateHandle
	filter *gameplaytag.Container
	fn     func(matched gameplaytag.Tag, data EventData)
}

// System is one character's ability system. Exact delegates are keyed by a
// literal tag; container delegates accept any tag that matches their filter
// hierarchically.
type System struct {
	Log        *zap.Logger
	Owner      *donburi.Entry
	Attributes *attributes.Controller
	OwnerTags  *gameplaytag.Container

	// OnCue runs for every cue carried by an effect applied to this system.
	OnCue func(cue gameplaytag.Tag, instigator *donburi.Entry)

	exact      map[gameplaytag.Tag][]exactDelegate
	container  []containerDelegate
	registered map[DelegateHandle]struct{}
	nextHandle DelegateHandle

	abilities      map[gameplaytag.Tag]*Ability
	startupApplied bool
}

func NewSystem(owner *donburi.Entry, attrs *attributes.Controller, ownerTags *gameplaytag.Container, log *zap.Logger) *System {
	if log == nil {
		log = zap.NewNop()
	}
	if ownerTags == nil {
		ownerTags = gameplaytag.NewContainer()
	}
	return &System{
		Log:        log,
		Owner:      owner,
		Attributes: attrs,
		OwnerTags:  ownerTags,
		exact:      make(map[gameplaytag.Tag][]exactDelegate),
		registered: make(map[DelegateHandle]struct{}),
		abilities:  make(map[gameplaytag.Tag]*Ability),
	}
}

func (s *System) newHandle() DelegateHandle {
	s.nextHandle++
	s.registered[s.nextHandle] = struct{}{}
	return s.nextHandle
}

// AddExactEventDelegate listens for events carrying exactly tag.
func (s *System) AddExactEventDelegate(tag gameplaytag.Tag, fn func(EventData)) DelegateHandle {
	h := s.newHandle()
	s.exact[tag] = append(s.exact[tag], exactDelegate{handle: h, fn: fn})
	return h
}

// RemoveExactEventDelegate removes h from the slot for tag. It reports false
// when h is not registered there.
func (s *System) RemoveExactEventDelegate(tag gameplaytag.Tag, h DelegateHandle) bool {
	list := s.exact[tag]
	for i, d := range list {
		if d.handle != h {
			continue
		}
		list = append(list[:i:i], list[i+1:]...)
		if len(list) == 0 {
			delete(s.exact, tag)
		} else {
			s.exact[tag] = list
		}
		delete(s.registered, h)
		return true
	}
	return false
}

// AddContainerEventDelegate listens for any tag matching filter.
func (s *System) AddContainerEventDelegate(filter *gameplaytag.Container, fn func(matched gameplaytag.Tag, data EventData)) DelegateHandle {
	h := s.newHandle()
	s.container = append(s.container, containerDelegate{handle: h, filter: filter, fn: fn})
	return h
}

func (s *System) RemoveContainerEventDelegate(h DelegateHandle) bool {
	for i, d := range s.container {
		if d.handle != h {
			continue
		}
		s.container = append(s.container[:i:i], s.container[i+1:]...)
		delete(s.registered, h)
		return true
	}
	return false
}

func (s *System) ExactDelegateCount(tag gameplaytag.Tag) int { return len(s.exact[tag]) }

func (s *System) ContainerDelegateCount() int { return len(s.container) }

// SendGameplayEvent delivers data to the exact delegates for tag and then to
// the container delegates whose filter matches it. Delegates are snapshotted
// before delivery; one removed by an earlier callback is skipped. It returns
// the number of delegates invoked.
func (s *System) SendGameplayEvent(tag gameplaytag.Tag, data EventData) int {
	if !tag.IsValid() {
		s.Log.Warn("ability: event with empty tag")
		return 0
	}
	data.EventTag = tag

	exact := append([]exactDelegate(nil), s.exact[tag]...)
	container := append([]containerDelegate(nil), s.container...)

	invoked := 0
	for _, d := range exact {
		if !s.isRegistered(d.handle) {
			continue
		}
		d.fn(data)
		invoked++
	}
	for _, d := range container {
		if !s.isRegistered(d.handle) || !d.filter.Matches(tag) {
			continue
		}
		d.fn(tag, data)
		invoked++
	}
	return invoked
}

func (s *System) isRegistered(h DelegateHandle) bool {
	_, ok := s.registered[h]
	return ok
}
