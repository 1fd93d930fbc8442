package ui

import "testing"

func TestStatusLine(t *testing.T) {
	got := StatusLine(3, 42, 7)
	want := "Day: 3  Frame: 42  Population: 7"
	if got != want {
		t.Errorf("StatusLine(3, 42, 7) = %q, want %q", got, want)
	}
}

func TestClampSteps(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, MinStepsPerUpdate},
		{-5, MinStepsPerUpdate},
		{5, 5},
		{MaxStepsPerUpdate + 1, MaxStepsPerUpdate},
	}
	for _, tt := range tests {
		if got := ClampSteps(tt.in); got != tt.want {
			t.Errorf("ClampSteps(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStatsPanelToggle(t *testing.T) {
	p := NewStatsPanel(0, 0, 200)
	if p.IsVisible() {
		t.Fatal("panel should start hidden")
	}
	if !p.Toggle() || !p.IsVisible() {
		t.Error("Toggle() should show the panel")
	}
	if p.Toggle() {
		t.Error("second Toggle() should hide the panel")
	}
}
