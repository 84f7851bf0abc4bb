package direction

import (
	"fmt"
	"strings"

	"github.com/captainzonks/hopper/shared/gamemath"
)

// PunchNudge is how far the sprite is pushed toward the facing during a punch.
const PunchNudge = 25.0

// PunchOffset returns the presentation offset applied while a punch is active.
func PunchOffset(d Direction) gamemath.Vec3 {
	var x, y float64
	switch d {
	case Up:
		x = PunchNudge
	case Down:
		x = -PunchNudge
	case Right:
		y = PunchNudge
	case Left:
		y = -PunchNudge
	case UpRight:
		x, y = PunchNudge, PunchNudge
	case UpLeft:
		x, y = PunchNudge, -PunchNudge
	case DownRight:
		x, y = -PunchNudge, PunchNudge
	case DownLeft:
		x, y = -PunchNudge, -PunchNudge
	}
	return gamemath.Vec3{X: x, Y: y}
}

type Mode int

const (
	Idle Mode = iota
	Walk
	Punch
)

// AnimationKey selects a flipbook and its playback rate.
type AnimationKey struct {
	Mode     Mode
	Facing   Direction
	PlayRate float64
}

func (k AnimationKey) String() string {
	mode := "idle"
	switch k.Mode {
	case Walk:
		mode = "walk"
	case Punch:
		mode = "punch"
	}
	return fmt.Sprintf("%s_%s", mode, strings.ToLower(k.Facing.String()))
}

// Animation picks the walk flipbook while the character has any speed or is
// airborne and idle otherwise. speed is the raw velocity size, so motion
// below the facing dead zone still walks. Playback freezes while airborne.
func Animation(d Direction, speed float64, airborne bool) AnimationKey {
	key := AnimationKey{Mode: Idle, Facing: d, PlayRate: 1}
	if speed > 0 || airborne {
		key.Mode = Walk
	}
	if airborne {
		key.PlayRate = 0
	}
	return key
}

// PunchAnimation is the flipbook shown for the whole of a punch.
func PunchAnimation(d Direction) AnimationKey {
	return AnimationKey{Mode: Punch, Facing: d, PlayRate: 1}
}
