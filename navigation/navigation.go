// Package navigation builds a walkable grid over the arena floor and finds
// paths across it with A*.
package navigation

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/captainzonks/hopper/shared/gamemath"
	"github.com/captainzonks/hopper/tags"
	"github.com/solarlune/resolv"
)

// Grid represents the walkable areas of the arena floor
type Grid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*Node // 2D grid of nodes, indexed [y][x]
}

// Node is a single cell in the grid. It implements astar.Pather.
type Node struct {
	X, Y     int
	Walkable bool
	Grid     *Grid
}

var directions = []struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1}, // Cardinal
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, // Diagonal
}

// PathNeighbors returns adjacent walkable nodes. Diagonal steps that would
// clip a blocked corner are left out.
func (n *Node) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range directions {
		neighbor := n.Grid.node(n.X+d.dx, n.Y+d.dy)
		if neighbor == nil || !neighbor.Walkable {
			continue
		}
		if d.dx != 0 && d.dy != 0 {
			a, b := n.Grid.node(n.X+d.dx, n.Y), n.Grid.node(n.X, n.Y+d.dy)
			if a == nil || b == nil || !a.Walkable || !b.Walkable {
				continue
			}
		}
		neighbors = append(neighbors, neighbor)
	}
	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes
func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost is the Euclidean distance heuristic
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	toNode := to.(*Node)
	dx := float64(toNode.X - n.X)
	dy := float64(toNode.Y - n.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Center is the world position of the middle of the cell.
func (n *Node) Center() gamemath.Vec3 {
	x, y := n.Grid.GridToWorld(n.X, n.Y)
	return gamemath.Vec3{X: x, Y: y}
}

// NewGrid builds a grid from the solid objects in space. A cell is blocked
// when a box grown by clearance on every side overlaps solid geometry.
func NewGrid(space *resolv.Space, width, height int, cellSize, clearance float64) *Grid {
	gridW := int(float64(width) / cellSize)
	gridH := int(float64(height) / cellSize)

	grid := &Grid{
		Width:    gridW,
		Height:   gridH,
		CellSize: cellSize,
		Nodes:    make([][]*Node, gridH),
	}

	for y := 0; y < gridH; y++ {
		grid.Nodes[y] = make([]*Node, gridW)
		for x := 0; x < gridW; x++ {
			grid.Nodes[y][x] = &Node{X: x, Y: y, Walkable: true, Grid: grid}
		}
	}

	size := cellSize - 4 + clearance*2
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			worldX := float64(x)*cellSize + 2 - clearance
			worldY := float64(y)*cellSize + 2 - clearance

			probe := resolv.NewObject(worldX, worldY, size, size)
			space.Add(probe)
			if probe.Check(0, 0, tags.ResolvSolid) != nil {
				grid.Nodes[y][x].Walkable = false
			}
			space.Remove(probe)
		}
	}

	return grid
}

func (g *Grid) node(x, y int) *Node {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.Nodes[y][x]
}

// Walkable reports whether the cell under a world position can be crossed.
func (g *Grid) Walkable(pos gamemath.Vec3) bool {
	n := g.node(g.cell(pos.X), g.cell(pos.Y))
	return n != nil && n.Walkable
}

func (g *Grid) cell(v float64) int {
	return int(math.Floor(v / g.CellSize))
}

// FindPath returns the cells from start to goal, both included, or nil when
// the goal cannot be reached. Endpoints inside solid geometry snap to the
// nearest walkable cell.
func (g *Grid) FindPath(start, goal gamemath.Vec3) []*Node {
	if g.Width == 0 || g.Height == 0 {
		return nil
	}
	sx := clampInt(g.cell(start.X), 0, g.Width-1)
	sy := clampInt(g.cell(start.Y), 0, g.Height-1)
	gx := clampInt(g.cell(goal.X), 0, g.Width-1)
	gy := clampInt(g.cell(goal.Y), 0, g.Height-1)

	startNode := g.Nodes[sy][sx]
	goalNode := g.Nodes[gy][gx]
	if !startNode.Walkable {
		startNode = g.findNearestWalkable(sx, sy)
	}
	if !goalNode.Walkable {
		goalNode = g.findNearestWalkable(gx, gy)
	}
	if startNode == nil || goalNode == nil {
		return nil
	}
	if startNode == goalNode {
		return []*Node{startNode}
	}

	// go-astar walks from the goal back to the start
	path, _, found := astar.Path(goalNode, startNode)
	if !found {
		return nil
	}
	result := make([]*Node, len(path))
	for i, p := range path {
		result[i] = p.(*Node)
	}
	return result
}

// NextWaypoint is where something at from should head to reach to: the
// first cell along the path it is not already standing in, or to itself
// when they share a cell or no path exists.
func (g *Grid) NextWaypoint(from, to gamemath.Vec3) gamemath.Vec3 {
	path := g.FindPath(from, to)
	if len(path) < 3 {
		return to
	}
	return path[1].Center()
}

// findNearestWalkable searches in expanding squares
func (g *Grid) findNearestWalkable(x, y int) *Node {
	for radius := 1; radius < 10; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if n := g.node(x+dx, y+dy); n != nil && n.Walkable {
					return n
				}
			}
		}
	}
	return nil
}

// GridToWorld converts grid coordinates to the center of the cell
func (g *Grid) GridToWorld(gridX, gridY int) (float64, float64) {
	return float64(gridX)*g.CellSize + g.CellSize/2,
		float64(gridY)*g.CellSize + g.CellSize/2
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
