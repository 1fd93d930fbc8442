package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evolve/ui"
)

// controlsHeight is the strip at the bottom of the window reserved for
// the HUD buttons; clicks there never select creatures.
const controlsHeight = 40

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		g.stepsPerUpdate = ui.ClampSteps(g.stepsPerUpdate - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		g.stepsPerUpdate = ui.ClampSteps(g.stepsPerUpdate + 1)
	}

	if rl.IsKeyPressed(rl.KeyS) && g.statsPanel != nil {
		g.statsPanel.Toggle()
	}

	// Single step while paused
	if g.paused && rl.IsKeyPressed(rl.KeyN) {
		g.Tick()
	}

	g.handleCameraInput()
	g.handleSelection()
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	if g.camera == nil {
		return
	}

	panSpeed := float32(8.0)
	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}

// handleSelection picks or clears the inspected creature.
func (g *Game) handleSelection() {
	if g.inspector == nil {
		return
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.inspector.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	mouse := rl.GetMousePosition()
	if mouse.Y >= float32(g.cfg.Derived.WindowSize-controlsHeight) {
		return
	}
	if cell, ok := g.camera.ScreenToCell(mouse.X, mouse.Y, g.cfg.Screen.CellSize); ok {
		g.inspector.Select(cell, g.pop)
	}
}
