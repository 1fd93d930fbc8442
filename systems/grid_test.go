package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/evolve/components"
)

func newTestGrid(size int, seed int64) *Grid {
	return NewGrid(size, rand.New(rand.NewSource(seed)))
}

func TestRandomInteriorPositionInBounds(t *testing.T) {
	g := newTestGrid(7, 1)
	for i := 0; i < 5000; i++ {
		p := g.RandomInteriorPosition()
		if !g.InBounds(p) {
			t.Fatalf("RandomInteriorPosition() = %v, outside 7x7 grid", p)
		}
	}
}

func TestRandomEdgePositionOnBoundary(t *testing.T) {
	sizes := []int{1, 2, 5, 50}
	for _, size := range sizes {
		g := newTestGrid(size, int64(size))
		for i := 0; i < 2000; i++ {
			p := g.RandomEdgePosition()
			if !g.InBounds(p) {
				t.Fatalf("size %d: edge position %v out of bounds", size, p)
			}
			if !g.OnEdge(p) {
				t.Fatalf("size %d: edge position %v not on a boundary", size, p)
			}
		}
	}
}

func TestRandomEdgePositionCornerDensity(t *testing.T) {
	// Edges are chosen first, so a corner (on two edges) should come up about
	// twice as often as a cell in the middle of an edge.
	g := newTestGrid(5, 99)
	const samples = 40000

	var corner, middle int
	for i := 0; i < samples; i++ {
		switch g.RandomEdgePosition() {
		case components.Position{X: 0, Y: 0}:
			corner++
		case components.Position{X: 2, Y: 0}:
			middle++
		}
	}

	if middle == 0 {
		t.Fatal("middle edge cell never sampled")
	}
	ratio := float64(corner) / float64(middle)
	if ratio < 1.6 || ratio > 2.4 {
		t.Errorf("corner/middle ratio = %.2f (corner=%d middle=%d), want ~2", ratio, corner, middle)
	}
}

func TestStepClampsAtBoundary(t *testing.T) {
	g := newTestGrid(5, 1)
	tests := []struct {
		name  string
		from  components.Position
		delta components.Delta
		want  components.Position
	}{
		{"left wall", components.Position{X: 0, Y: 2}, components.Delta{DX: -1}, components.Position{X: 0, Y: 2}},
		{"right wall", components.Position{X: 4, Y: 2}, components.Delta{DX: 1}, components.Position{X: 4, Y: 2}},
		{"top wall", components.Position{X: 2, Y: 0}, components.Delta{DY: -1}, components.Position{X: 2, Y: 0}},
		{"bottom wall", components.Position{X: 2, Y: 4}, components.Delta{DY: 1}, components.Position{X: 2, Y: 4}},
		{"interior move", components.Position{X: 2, Y: 2}, components.Delta{DX: 1}, components.Position{X: 3, Y: 2}},
		{"stay", components.Position{X: 0, Y: 0}, components.Delta{}, components.Position{X: 0, Y: 0}},
		{"blocked x free y", components.Position{X: 0, Y: 2}, components.Delta{DX: -1, DY: 1}, components.Position{X: 0, Y: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Step(tt.from, tt.delta)
			if got != tt.want {
				t.Errorf("Step(%v, %v) = %v, want %v", tt.from, tt.delta, got, tt.want)
			}
		})
	}
}

func TestStepNeverLeavesGrid(t *testing.T) {
	g := newTestGrid(4, 1)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			from := components.Position{X: x, Y: y}
			for _, d := range components.Moves {
				if got := g.Step(from, d); !g.InBounds(got) {
					t.Errorf("Step(%v, %v) = %v, out of bounds", from, d, got)
				}
			}
		}
	}
}

func TestRandomMoveDistribution(t *testing.T) {
	g := newTestGrid(5, 3)
	const samples = 50000

	counts := make(map[components.Delta]int)
	for i := 0; i < samples; i++ {
		counts[g.RandomMove()]++
	}

	if len(counts) != len(components.Moves) {
		t.Fatalf("sampled %d distinct moves, want %d", len(counts), len(components.Moves))
	}
	for d, n := range counts {
		frac := float64(n) / samples
		if frac < 0.18 || frac > 0.22 {
			t.Errorf("move %v frequency = %.3f, want ~0.2", d, frac)
		}
	}
}
