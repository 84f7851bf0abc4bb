package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Floor2 truncates toward negative infinity at 0.01 resolution.
// Small speeds fall into a dead zone so direction does not flicker.
func Floor2(v float64) float64 {
	return math.Floor(v*100) / 100
}

// DirectionUnit returns the unit vector pointing from -> to, or zero when
// the two points coincide.
func DirectionUnit(from, to Vec3) Vec3 {
	return to.Sub(from).SafeNormal()
}

// PunchLaunch returns the knockback launch velocity for a unit direction.
// The vertical component is biased by +1 so every hit lifts the target.
func PunchLaunch(dir Vec3, force float64) Vec3 {
	return Vec3{
		X: dir.X * force,
		Y: dir.Y * force,
		Z: math.Abs(dir.Z+1) * force,
	}
}

// SeekVelocity returns ground-plane velocity components to move toward a
// target at the given speed.
func SeekVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - fromX
	dirY := targetY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// Distance2D returns the ground-plane distance between two points.
func Distance2D(a, b Vec3) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
