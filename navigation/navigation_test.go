package navigation

import (
	"testing"

	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/tags"
	"github.com/solarlune/resolv"
)

const cell = 64.0

// newSpace is a 10x10 cell floor with the given solid rectangles.
func newSpace(walls ...[4]float64) *resolv.Space {
	space := resolv.NewSpace(640, 640, 32, 32)
	for _, w := range walls {
		obj := resolv.NewObject(w[0], w[1], w[2], w[3], tags.ResolvSolid)
		space.Add(obj)
	}
	return space
}

func center(x, y int) gamemath.Vec3 {
	return gamemath.Vec3{X: float64(x)*cell + cell/2, Y: float64(y)*cell + cell/2}
}

func TestNewGridMarksSolidCells(t *testing.T) {
	grid := NewGrid(newSpace([4]float64{256, 0, 64, 440}), 640, 640, cell, 0)

	if grid.Width != 10 || grid.Height != 10 {
		t.Fatalf("grid = %dx%d, want 10x10", grid.Width, grid.Height)
	}
	tests := []struct {
		x, y int
		want bool
	}{
		{4, 0, false},
		{4, 6, false},
		{4, 7, true},
		{3, 0, true},
		{5, 0, true},
	}
	for _, tt := range tests {
		if got := grid.Walkable(center(tt.x, tt.y)); got != tt.want {
			t.Errorf("Walkable(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if grid.Walkable(gamemath.Vec3{X: -10, Y: 10}) {
		t.Error("outside the grid is walkable")
	}
}

func TestFindPathDetours(t *testing.T) {
	grid := NewGrid(newSpace([4]float64{256, 0, 64, 440}), 640, 640, cell, 0)

	path := grid.FindPath(center(1, 1), center(8, 1))
	if len(path) == 0 {
		t.Fatal("no path around the wall")
	}
	if first, last := path[0], path[len(path)-1]; first.X != 1 || first.Y != 1 || last.X != 8 || last.Y != 1 {
		t.Errorf("path runs %d,%d to %d,%d", first.X, first.Y, last.X, last.Y)
	}
	for _, n := range path {
		if !n.Walkable {
			t.Errorf("path crosses blocked cell %d,%d", n.X, n.Y)
		}
	}
	// The wall spans rows 0-6, so the path must dip to row 7
	deepest := 0
	for _, n := range path {
		deepest = max(deepest, n.Y)
	}
	if deepest < 7 {
		t.Errorf("path never goes below the wall, deepest row %d", deepest)
	}

	next := grid.NextWaypoint(center(1, 1), center(8, 1))
	if next == center(8, 1) {
		t.Error("NextWaypoint heads straight through the wall")
	}
	if next != path[1].Center() {
		t.Errorf("NextWaypoint = %+v, want %+v", next, path[1].Center())
	}
}

func TestFindPathUnreachable(t *testing.T) {
	grid := NewGrid(newSpace([4]float64{256, 0, 64, 640}), 640, 640, cell, 0)

	if path := grid.FindPath(center(1, 1), center(8, 1)); path != nil {
		t.Errorf("path through a full wall: %d cells", len(path))
	}
	goal := center(8, 1)
	if got := grid.NextWaypoint(center(1, 1), goal); got != goal {
		t.Errorf("NextWaypoint = %+v, want the goal itself", got)
	}
}

func TestFindPathSnapsSolidEndpoints(t *testing.T) {
	grid := NewGrid(newSpace([4]float64{256, 256, 64, 64}), 640, 640, cell, 0)

	path := grid.FindPath(center(4, 4), center(8, 4))
	if len(path) == 0 {
		t.Fatal("no path from inside the block")
	}
	if start := path[0]; !start.Walkable || (start.X == 4 && start.Y == 4) {
		t.Errorf("start = %d,%d, want a walkable neighbour", start.X, start.Y)
	}

	if path := grid.FindPath(center(2, 2), center(2, 2)); len(path) != 1 {
		t.Errorf("same-cell path = %d cells, want 1", len(path))
	}
}

func TestClearanceBlocksNarrowGaps(t *testing.T) {
	// Two walls leave one open cell between them in row 4
	space := newSpace([4]float64{0, 256, 256, 64}, [4]float64{320, 256, 320, 64})
	tight := NewGrid(space, 640, 640, cell, 0)
	if !tight.Walkable(center(4, 4)) {
		t.Fatal("gap not walkable without clearance")
	}
	wide := NewGrid(space, 640, 640, cell, 8)
	if wide.Walkable(center(4, 4)) {
		t.Error("gap walkable with clearance larger than the margin")
	}
}
