package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Steps-per-update slider bounds.
const (
	MinStepsPerUpdate = 1
	MaxStepsPerUpdate = 20
)

// HUDData holds the values shown in the status line.
type HUDData struct {
	Day            int
	TickInDay      int
	Population     int
	Paused         bool
	StepsPerUpdate int
	ScreenWidth    int32
	ScreenHeight   int32
}

// HUDActions reports what the user did with the on-screen controls this
// frame.
type HUDActions struct {
	TogglePause    bool
	StepsPerUpdate int
}

// HUD renders the status line and the pause / speed controls.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// StatusLine formats the day / frame / population line.
func StatusLine(day, tickInDay, population int) string {
	return fmt.Sprintf("Day: %d  Frame: %d  Population: %d", day, tickInDay, population)
}

// Draw renders the HUD and returns the control actions taken.
func (h *HUD) Draw(data HUDData) HUDActions {
	rl.DrawText(StatusLine(data.Day, data.TickInDay, data.Population), 10, 10, 20, h.renderer.Theme.Text)

	actions := HUDActions{StepsPerUpdate: data.StepsPerUpdate}

	label := "Pause"
	if data.Paused {
		label = "Resume"
		rl.DrawText("PAUSED", 10, 34, 16, rl.Orange)
	}

	y := float32(data.ScreenHeight - 30)
	if gui.Button(rl.Rectangle{X: 10, Y: y, Width: 70, Height: 20}, label) {
		actions.TogglePause = true
	}

	speed := gui.SliderBar(
		rl.Rectangle{X: 130, Y: y, Width: 120, Height: 20},
		"Speed", fmt.Sprintf("%dx", data.StepsPerUpdate),
		float32(data.StepsPerUpdate), MinStepsPerUpdate, MaxStepsPerUpdate,
	)
	actions.StepsPerUpdate = ClampSteps(int(speed + 0.5))

	return actions
}

// ClampSteps bounds a steps-per-update value to the slider range.
func ClampSteps(n int) int {
	return min(max(n, MinStepsPerUpdate), MaxStepsPerUpdate)
}
