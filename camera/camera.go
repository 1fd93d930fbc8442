// Package camera provides a zoom and pan view over the bounded grid.
package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evolve/components"
)

// Camera maps between world pixels and screen pixels. The view never
// leaves the world: at zoom 1 the whole grid is visible.
type Camera struct {
	// Center of the view in world pixels
	X, Y float32

	Zoom float32

	ViewportW, ViewportH float32
	WorldW, WorldH       float32

	MinZoom, MaxZoom float32
}

// New creates a camera centered on a worldW x worldH world.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
		MinZoom:   1.0,
		MaxZoom:   8.0,
	}
	c.Reset()
	return c
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// ScreenToCell returns the grid cell under a screen point, or false when
// the point is outside the grid.
func (c *Camera) ScreenToCell(sx, sy float32, cellSize int) (components.Position, bool) {
	wx, wy := c.ScreenToWorld(sx, sy)
	if wx < 0 || wy < 0 || wx >= c.WorldW || wy >= c.WorldH {
		return components.Position{}, false
	}
	return components.Position{X: int(wx) / cellSize, Y: int(wy) / cellSize}, true
}

// Pan moves the view by screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clampCenter()
}

// SetZoom sets the zoom level, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = min(max(zoom, c.MinZoom), c.MaxZoom)
	c.clampCenter()
}

// ZoomBy multiplies the zoom level.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset shows the whole world.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.Zoom = 1.0
}

// clampCenter keeps the visible area inside the world.
func (c *Camera) clampCenter() {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	c.X = clampAxis(c.X, halfW, c.WorldW)
	c.Y = clampAxis(c.Y, halfH, c.WorldH)
}

func clampAxis(center, half, world float32) float32 {
	if 2*half >= world {
		return world / 2
	}
	return min(max(center, half), world-half)
}

// RL returns the equivalent raylib camera for BeginMode2D.
func (c *Camera) RL() rl.Camera2D {
	return rl.Camera2D{
		Offset: rl.Vector2{X: c.ViewportW / 2, Y: c.ViewportH / 2},
		Target: rl.Vector2{X: c.X, Y: c.Y},
		Zoom:   c.Zoom,
	}
}
