package gamemath

import "math"

// Vec3 is a world-space vector. X is forward, Y is right, Z is up.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Size returns the Euclidean length.
func (v Vec3) Size() float64 { return math.Sqrt(v.Dot(v)) }

// Size2D returns the length of the ground-plane projection.
func (v Vec3) Size2D() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// SafeNormal returns the unit vector, or the zero vector when v is too short
// to normalize.
func (v Vec3) SafeNormal() Vec3 {
	size := v.Size()
	if size < 1e-8 {
		return Vec3{}
	}
	return v.Scale(1 / size)
}

// Rotator is an orientation in degrees.
type Rotator struct {
	Pitch, Yaw, Roll float64
}

// Forward returns the unit vector the rotator points along.
func (r Rotator) Forward() Vec3 {
	pitch := r.Pitch * math.Pi / 180
	yaw := r.Yaw * math.Pi / 180
	cp := math.Cos(pitch)
	return Vec3{
		X: cp * math.Cos(yaw),
		Y: cp * math.Sin(yaw),
		Z: math.Sin(pitch),
	}
}

// Right returns the unit vector to the right of Forward on the ground plane.
// Roll is ignored.
func (r Rotator) Right() Vec3 {
	yaw := r.Yaw * math.Pi / 180
	return Vec3{
		X: -math.Sin(yaw),
		Y: math.Cos(yaw),
	}
}
