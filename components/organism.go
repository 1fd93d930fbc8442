// Package components defines ECS components for the simulation.
package components

import "fmt"

// Status is a creature's feeding state within the current day.
type Status uint8

const (
	StatusActive Status = iota // Still seeking food, moves every tick
	StatusFed                  // Ate today, parked on an edge until day end
)

// String returns the display name for a Status.
func (s Status) String() string {
	names := StatusNames()
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// StatusNames returns the display names for all statuses.
// The order matches the Status constants.
func StatusNames() []string {
	return []string{"Active", "Fed"}
}

// MarshalText encodes the status by name for JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range StatusNames() {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}

// Creature holds per-agent state. Position is stored as a separate component.
type Creature struct {
	ID     uint32
	Status Status

	// Bookmarking only; never read by the movement or feeding rules.
	BornDay      int // Day the creature was created
	DaysSurvived int // Completed days it was fed on
}

// Fed reports whether the creature has eaten today.
func (c *Creature) Fed() bool {
	return c.Status == StatusFed
}
