package systems

import (
	"math/rand"

	"github.com/pthm-cable/evolve/components"
)

// Edge identifies one side of the grid.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
	numEdges
)

// Grid is the square, bounded world. All random placement draws from the
// shared generator so a fixed seed reproduces a run.
type Grid struct {
	size int
	rng  *rand.Rand
}

// NewGrid creates a size x size grid sampling from rng.
func NewGrid(size int, rng *rand.Rand) *Grid {
	if size < 1 {
		panic("systems: grid size must be >= 1")
	}
	return &Grid{size: size, rng: rng}
}

// Size returns the side length in cells.
func (g *Grid) Size() int {
	return g.size
}

// Cells returns the total number of cells.
func (g *Grid) Cells() int {
	return g.size * g.size
}

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p components.Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// OnEdge reports whether p lies on at least one boundary.
func (g *Grid) OnEdge(p components.Position) bool {
	last := g.size - 1
	return p.X == 0 || p.Y == 0 || p.X == last || p.Y == last
}

// RandomInteriorPosition samples any cell uniformly.
func (g *Grid) RandomInteriorPosition() components.Position {
	return components.Position{X: g.rng.Intn(g.size), Y: g.rng.Intn(g.size)}
}

// RandomEdgePosition picks one of the four edges with equal probability and
// then a uniform cell along it. Corners belong to two edges and are sampled
// twice as often as other boundary cells.
func (g *Grid) RandomEdgePosition() components.Position {
	edge := Edge(g.rng.Intn(int(numEdges)))
	along := g.rng.Intn(g.size)
	return g.edgeCell(edge, along)
}

func (g *Grid) edgeCell(edge Edge, along int) components.Position {
	last := g.size - 1
	switch edge {
	case EdgeTop:
		return components.Position{X: along, Y: 0}
	case EdgeBottom:
		return components.Position{X: along, Y: last}
	case EdgeLeft:
		return components.Position{X: 0, Y: along}
	default:
		return components.Position{X: last, Y: along}
	}
}

// Step applies d to p one axis at a time. An axis whose result would leave
// the grid keeps its old coordinate; the other axis still moves.
func (g *Grid) Step(p components.Position, d components.Delta) components.Position {
	if x := p.X + d.DX; x >= 0 && x < g.size {
		p.X = x
	}
	if y := p.Y + d.DY; y >= 0 && y < g.size {
		p.Y = y
	}
	return p
}

// RandomMove samples one of the five moves uniformly.
func (g *Grid) RandomMove() components.Delta {
	return components.Moves[g.rng.Intn(len(components.Moves))]
}
