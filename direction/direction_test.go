package direction

import (
	"testing"

	"github.com/captainzonks/hopper/shared/gamemath"
)

var worldBasis = Basis{
	Forward: gamemath.Vec3{X: 1},
	Right:   gamemath.Vec3{Y: 1},
}

func TestResolveOctants(t *testing.T) {
	tests := []struct {
		name     string
		velocity gamemath.Vec3
		want     Direction
	}{
		{"forward", gamemath.Vec3{X: 1}, Up},
		{"backward", gamemath.Vec3{X: -1}, Down},
		{"right", gamemath.Vec3{Y: 1}, Right},
		{"left", gamemath.Vec3{Y: -1}, Left},
		{"forward right", gamemath.Vec3{X: 1, Y: 1}, UpRight},
		{"forward left", gamemath.Vec3{X: 1, Y: -1}, UpLeft},
		{"backward right", gamemath.Vec3{X: -1, Y: 1}, DownRight},
		{"backward left", gamemath.Vec3{X: -1, Y: -1}, DownLeft},
		{"mostly forward", gamemath.Vec3{X: 2, Y: 1}, Up},
		{"slow forward", gamemath.Vec3{X: 0.001}, Up},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(worldBasis)
			r.SetFacing(Left)
			if got := r.Resolve(tt.velocity, false, nil); got != tt.want {
				t.Errorf("Resolve(%+v) = %v, want %v", tt.velocity, got, tt.want)
			}
			if !r.Moving() {
				t.Error("Moving() = false, want true")
			}
		})
	}
}

func TestResolveStationaryKeepsFacing(t *testing.T) {
	r := NewResolver(worldBasis)
	r.Resolve(gamemath.Vec3{X: -1, Y: 1}, false, nil)

	for i := 0; i < 3; i++ {
		if got := r.Resolve(gamemath.Vec3{}, false, nil); got != DownRight {
			t.Fatalf("stationary Resolve = %v, want DownRight", got)
		}
	}
	if r.Moving() {
		t.Error("Moving() = true for zero velocity")
	}
}

func TestResolveAirborneKeepsFacing(t *testing.T) {
	r := NewResolver(worldBasis)
	r.Resolve(gamemath.Vec3{Y: 1}, false, nil)

	if got := r.Resolve(gamemath.Vec3{X: 1}, true, nil); got != Right {
		t.Errorf("airborne Resolve = %v, want Right", got)
	}
	if got := r.Resolve(gamemath.Vec3{X: 1}, false, nil); got != Up {
		t.Errorf("landed Resolve = %v, want Up", got)
	}
}

func TestResolveUsesCameraBasis(t *testing.T) {
	// camera looking along +Y
	camera := BasisFromRotator(gamemath.Rotator{Yaw: 90})
	r := NewResolver(worldBasis)

	if got := r.Resolve(gamemath.Vec3{Y: 1}, false, &camera); got != Up {
		t.Errorf("Resolve with camera = %v, want Up", got)
	}
	if got := r.Resolve(gamemath.Vec3{Y: 1}, false, nil); got != Right {
		t.Errorf("Resolve with actor basis = %v, want Right", got)
	}
}

func TestClassifyOrder(t *testing.T) {
	tests := []struct {
		forward, right float64
		want           Direction
	}{
		{0.5, 0.5, Left},
		{0.3, 0, Up},
		{0, 0.5, Down},
		{0, 0.6, Right},
		{-0.5, 0.5, Down},
		{0.5, 0.49, Up},
		{0.51, 0.5, UpRight},
	}
	for _, tt := range tests {
		if got := Classify(tt.forward, tt.right, DefaultLateralThreshold); got != tt.want {
			t.Errorf("Classify(%v, %v) = %v, want %v", tt.forward, tt.right, got, tt.want)
		}
	}
}

func TestAnimation(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		airborne bool
		mode     Mode
		rate     float64
	}{
		{"idle", 0, false, Idle, 1},
		{"walking", 300, false, Walk, 1},
		{"creeping inside the dead zone", 0.001, false, Walk, 1},
		{"falling", 0, true, Walk, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := Animation(Left, tt.speed, tt.airborne)
			if key.Mode != tt.mode || key.PlayRate != tt.rate {
				t.Errorf("Animation = %+v, want mode %v rate %v", key, tt.mode, tt.rate)
			}
		})
	}
	if s := Animation(UpLeft, 300, false).String(); s != "walk_upleft" {
		t.Errorf("String = %q, want walk_upleft", s)
	}
	punch := PunchAnimation(Down)
	if punch.Mode != Punch || punch.PlayRate != 1 || punch.String() != "punch_down" {
		t.Errorf("PunchAnimation(Down) = %+v %q", punch, punch.String())
	}
}

func TestPunchOffset(t *testing.T) {
	if got := PunchOffset(DownLeft); got.X != -PunchNudge || got.Y != -PunchNudge {
		t.Errorf("PunchOffset(DownLeft) = %+v", got)
	}
	if got := PunchOffset(Right); got.X != 0 || got.Y != PunchNudge {
		t.Errorf("PunchOffset(Right) = %+v", got)
	}
}
