// Package direction resolves which of eight facings a character animates
// toward from its velocity and a view basis.
package direction

import "github.com/captainzonks/hopper/shared/gamemath"

type Direction int

const (
	Down Direction = iota
	Up
	Right
	Left
	DownRight
	DownLeft
	UpRight
	UpLeft
)

var directionNames = [...]string{
	Down:      "Down",
	Up:        "Up",
	Right:     "Right",
	Left:      "Left",
	DownRight: "DownRight",
	DownLeft:  "DownLeft",
	UpRight:   "UpRight",
	UpLeft:    "UpLeft",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "Unknown"
	}
	return directionNames[d]
}

// Basis is the pair of ground-plane axes velocity is projected onto.
type Basis struct {
	Forward gamemath.Vec3
	Right   gamemath.Vec3
}

// BasisFromRotator builds a basis from a view or actor rotation.
func BasisFromRotator(r gamemath.Rotator) Basis {
	return Basis{Forward: r.Forward(), Right: r.Right()}
}

// DefaultLateralThreshold separates the cardinal and diagonal branches.
const DefaultLateralThreshold = 0.5

// Resolver keeps the last resolved facing of one character.
type Resolver struct {
	// Actor is the character's own basis, used when no camera basis is given.
	Actor            Basis
	LateralThreshold float64

	last         Direction
	forwardSpeed float64
	rightSpeed   float64
	moving       bool
}

func NewResolver(actor Basis) *Resolver {
	return &Resolver{
		Actor:            actor,
		LateralThreshold: DefaultLateralThreshold,
		last:             Down,
	}
}

// Resolve projects velocity onto the camera basis, or the actor basis when
// camera is nil, and updates the facing. While stationary or airborne the
// last known facing is returned unchanged.
func (r *Resolver) Resolve(velocity gamemath.Vec3, airborne bool, camera *Basis) Direction {
	basis := r.Actor
	if camera != nil {
		basis = *camera
	}

	n := velocity.SafeNormal()
	r.forwardSpeed = gamemath.Floor2(n.Dot(basis.Forward))
	r.rightSpeed = gamemath.Floor2(n.Dot(basis.Right))
	r.moving = r.forwardSpeed != 0 || r.rightSpeed != 0

	if !r.moving || airborne {
		return r.last
	}
	r.last = Classify(r.forwardSpeed, r.rightSpeed, r.threshold())
	return r.last
}

func (r *Resolver) threshold() float64 {
	if r.LateralThreshold <= 0 {
		return DefaultLateralThreshold
	}
	return r.LateralThreshold
}

// Classify maps quantized forward/right speeds to a facing. Predicates are
// evaluated in order and the first match wins.
func Classify(forward, right, t float64) Direction {
	switch {
	case forward > 0 && abs(right) < t:
		return Up
	case forward > t && right >= t:
		return UpRight
	case forward > t && right <= -t:
		return UpLeft
	case forward < t && abs(right) <= t:
		return Down
	case forward < -t && right >= t:
		return DownRight
	case forward < -t && right <= -t:
		return DownLeft
	case abs(forward) < t && right > 0:
		return Right
	default:
		return Left
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Facing returns the last resolved direction.
func (r *Resolver) Facing() Direction { return r.last }

// SetFacing overrides the remembered direction, e.g. on respawn.
func (r *Resolver) SetFacing(d Direction) { r.last = d }

// Moving reports whether the last Resolve saw a non-zero quantized speed.
func (r *Resolver) Moving() bool { return r.moving }

func (r *Resolver) ForwardSpeed() float64 { return r.forwardSpeed }

func (r *Resolver) RightSpeed() float64 { return r.rightSpeed }
