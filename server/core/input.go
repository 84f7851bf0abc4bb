package core

import (
	"sync"

	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/direction"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/shared/messages"
	"github.com/yohamta/donburi"
)

// RemoteInput holds the latest input a network client sent for its player.
// Push is called from transport goroutines; Next runs on the game loop.
type RemoteInput struct {
	mu     sync.Mutex
	latest messages.PlayerInput
	seen   bool
}

// Push records in unless an input with a later sequence already arrived.
func (r *RemoteInput) Push(in messages.PlayerInput) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seen && in.Sequence <= r.latest.Sequence {
		return false
	}
	r.latest = in
	r.seen = true
	return true
}

func (r *RemoteInput) Next(w donburi.World, self *donburi.Entry) components.Intent {
	r.mu.Lock()
	in := r.latest
	r.mu.Unlock()

	var camera gamemath.Rotator
	if self.HasComponent(components.Player) {
		camera = components.Player.Get(self).Camera
	}
	basis := direction.BasisFromRotator(camera)
	move := basis.Forward.Scale(in.MoveForward).Add(basis.Right.Scale(in.MoveRight))
	return components.Intent{Move: move, Jump: in.Jump, Punch: in.Punch}
}
