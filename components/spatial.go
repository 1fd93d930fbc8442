package components

import "fmt"

// Position is a grid cell coordinate.
type Position struct {
	X, Y int
}

// Add returns p offset by d without any bounds check.
func (p Position) Add(d Delta) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Delta is a single-step movement offset.
type Delta struct {
	DX, DY int
}

// Moves is the random-walk move set. Staying put is one of five equally
// likely outcomes.
var Moves = [5]Delta{
	{DX: 1, DY: 0},
	{DX: -1, DY: 0},
	{DX: 0, DY: 1},
	{DX: 0, DY: -1},
	{DX: 0, DY: 0},
}
