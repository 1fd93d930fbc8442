package ui

import (
	"fmt"
	"time"
)

// StatsPanelData holds the figures shown in the statistics panel.
type StatsPanelData struct {
	LastDay       int
	Survivors     int
	Starved       int
	FoodEaten     int
	SurvivalRate  float64
	OldestAge     int
	MeanFeedTick  float64
	AvgTick       time.Duration
	TicksPerSec   float64
	MeanSurvival  float64
	ExtinctionDay int
}

// StatsPanel renders the previous day's statistics and run totals.
type StatsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewStatsPanel creates a hidden statistics panel.
func NewStatsPanel(x, y, width int32) *StatsPanel {
	return &StatsPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// Toggle switches panel visibility.
func (p *StatsPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *StatsPanel) IsVisible() bool {
	return p.visible
}

// Draw renders the panel when visible.
func (p *StatsPanel) Draw(data StatsPanelData) {
	if !p.visible {
		return
	}
	r := p.renderer
	pad := r.Theme.Padding

	p.renderer.DrawPanel(p.x, p.y, p.width, 11*r.Theme.LineHeight+pad*2)

	x := p.x + pad
	y := p.y + pad
	if data.LastDay == 0 {
		y = r.DrawSectionHeader(x, y, "Day in progress")
	} else {
		y = r.DrawSectionHeader(x, y, fmt.Sprintf("Day %d", data.LastDay))
	}
	y = r.DrawLabelValue(x, y, "Survivors", fmt.Sprintf("%d", data.Survivors))
	y = r.DrawLabelValue(x, y, "Starved", fmt.Sprintf("%d", data.Starved))
	y = r.DrawLabelValue(x, y, "Food eaten", fmt.Sprintf("%d", data.FoodEaten))
	y = r.DrawLabelValue(x, y, "Mean feed", fmt.Sprintf("%.1f", data.MeanFeedTick))
	y = r.DrawLabelValue(x, y, "Oldest", fmt.Sprintf("%d days", data.OldestAge))
	y = r.DrawBar(x, y, "Survival", float32(data.SurvivalRate), p.width-pad*2)

	y = r.DrawSectionHeader(x, y, "Run")
	y = r.DrawBar(x, y, "Mean surv.", float32(data.MeanSurvival), p.width-pad*2)
	if data.ExtinctionDay > 0 {
		y = r.DrawLabelValue(x, y, "Extinct", fmt.Sprintf("day %d", data.ExtinctionDay))
	}
	r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%s (%.0f/s)", data.AvgTick.Round(time.Microsecond), data.TicksPerSec))
}
