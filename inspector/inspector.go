// Package inspector lets the user click a grid cell and follow the
// creature standing there.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/evolve/components"
	"github.com/pthm-cable/evolve/systems"
	"github.com/pthm-cable/evolve/ui"
)

// Panel dimensions
const (
	PanelWidth   = 180
	PanelPadding = 8
)

// ColorHighlight outlines the selected creature's cell.
var ColorHighlight = rl.Color{R: 30, G: 90, B: 220, A: 255}

// Inspector tracks the selected creature.
type Inspector struct {
	selected    ecs.Entity
	hasSelected bool
	lastID      uint32
	panelX      int32
	panelY      int32
	renderer    *ui.Renderer
}

// NewInspector creates an inspector whose panel sits at the bottom left.
func NewInspector(screenHeight int32) *Inspector {
	return &Inspector{
		panelX:   10,
		panelY:   screenHeight - 150,
		renderer: ui.NewRenderer(),
	}
}

// Select picks the creature on cell, or clears the selection when the
// cell is empty.
func (ins *Inspector) Select(cell components.Position, pop *systems.Population) bool {
	e, ok := pop.At(cell)
	if !ok {
		ins.Deselect()
		return false
	}
	ins.selected = e
	ins.hasSelected = true
	if _, c, ok := pop.Details(e); ok {
		ins.lastID = c.ID
	}
	return true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the selected entity, if any.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// Data describes the selected creature for display.
type Data struct {
	ID           uint32
	Alive        bool
	Pos          components.Position
	Status       components.Status
	BornDay      int
	DaysSurvived int
}

// Inspect returns the selected creature's data. A creature that starved
// since it was selected is reported with Alive false.
func (ins *Inspector) Inspect(pop *systems.Population) (Data, bool) {
	if !ins.hasSelected {
		return Data{}, false
	}
	pos, c, ok := pop.Details(ins.selected)
	if !ok {
		return Data{ID: ins.lastID}, true
	}
	return Data{
		ID:           c.ID,
		Alive:        true,
		Pos:          pos,
		Status:       c.Status,
		BornDay:      c.BornDay,
		DaysSurvived: c.DaysSurvived,
	}, true
}

// Draw renders the panel for data. Must be called outside BeginMode2D.
func (ins *Inspector) Draw(data Data) {
	r := ins.renderer
	height := 5*r.Theme.LineHeight + 2*PanelPadding + 4
	r.DrawPanel(ins.panelX, ins.panelY, PanelWidth, height)

	x := ins.panelX + PanelPadding
	y := r.DrawSectionHeader(x, ins.panelY+PanelPadding, fmt.Sprintf("Creature #%d", data.ID))
	if !data.Alive {
		r.DrawLabelValue(x, y, "Status", "starved")
		return
	}
	y = r.DrawLabelValue(x, y, "Status", data.Status.String())
	y = r.DrawLabelValue(x, y, "Cell", data.Pos.String())
	y = r.DrawLabelValue(x, y, "Born", fmt.Sprintf("day %d", data.BornDay))
	r.DrawLabelValue(x, y, "Survived", fmt.Sprintf("%d days", data.DaysSurvived))
}

// DrawHighlight outlines cell. Must be called inside BeginMode2D.
func DrawHighlight(rect rl.Rectangle) {
	rl.DrawRectangleLinesEx(rect, 2, ColorHighlight)
}
