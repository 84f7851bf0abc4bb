package systems

import (
	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/systems/factory"
	"github.com/captainzonks/hopper/tags"
	"github.com/captainzonks/hopper/timer"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every character: steering on the ground plane,
// jumping, gravity on Z and wall collision through resolv.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	if dt <= 0 {
		return
	}
	timers := factory.Timers(ecs)

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Freeze dying characters in place during the death delay
		if e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		if physics.Disabled {
			return
		}

		var intent components.Intent
		jumpPressed := false
		if e.HasComponent(components.Control) {
			control := components.Control.Get(e)
			intent = control.Intent
			jumpPressed = control.JustPressedJump()
		}

		steer(physics, intent.Move, dt)
		if jumpPressed && !physics.Airborne && e.HasComponent(components.Jump) {
			Jump(e, timers)
		}
		integrateHeight(e, physics, timers, dt)

		if e.HasComponent(components.Object) {
			moveAndCollide(components.Object.Get(e).Object, physics, dt)
		}
	})
}

// steer accelerates toward the requested direction, or applies friction when
// there is none. Airborne characters keep their momentum.
func steer(physics *components.PhysicsData, move gamemath.Vec3, dt float64) {
	if physics.Airborne {
		return
	}
	v := gamemath.Vec3{X: physics.Velocity.X, Y: physics.Velocity.Y}
	if move.IsZero() {
		speed := gamemath.ApplyFriction(v.Size2D(), physics.Friction*dt)
		v = v.SafeNormal().Scale(speed)
	} else {
		v = v.Add(move.Scale(physics.Acceleration * dt))
		limit := physics.MaxSpeed * move.Size2D()
		if size := v.Size2D(); size > limit && size > 0 {
			v = v.Scale(limit / size)
		}
	}
	physics.Velocity.X, physics.Velocity.Y = v.X, v.Y
}

func integrateHeight(e *donburi.Entry, physics *components.PhysicsData, timers *timer.Manager, dt float64) {
	if !physics.Airborne {
		return
	}
	physics.Velocity.Z -= physics.Gravity * physics.GravityScale * dt
	if !physics.PastApex && physics.Velocity.Z <= 0 {
		NotifyApex(physics)
	}
	physics.Z += physics.Velocity.Z * dt
	if physics.Z > 0 {
		return
	}

	physics.Z = 0
	physics.Velocity.Z = 0
	physics.Airborne = false
	if e.HasComponent(components.Jump) {
		OnLanded(e, timers)
		return
	}
	resetGravity(physics)
}

func moveAndCollide(obj *resolv.Object, physics *components.PhysicsData, dt float64) {
	if dx := physics.Velocity.X * dt; dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			dx = check.ContactWithObject(check.Objects[0]).X()
			physics.Velocity.X = 0
		}
		obj.X += dx
	}
	if dy := physics.Velocity.Y * dt; dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			dy = check.ContactWithObject(check.Objects[0]).Y()
			physics.Velocity.Y = 0
		}
		obj.Y += dy
	}
	obj.Update()
}
