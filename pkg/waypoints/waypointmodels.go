// FILE: waypoints/models.go

package waypoints

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/illmade-knight/great-circle/pkg/geo"
)

// MatchResult indicates how closely a coordinate matches a waypoint.
type MatchResult string

const (
	MatchNone     MatchResult = "NONE"
	MatchPossible MatchResult = "POSSIBLE"
	MatchExact    MatchResult = "EXACT"
)

// PossibleMatchNM is the radius, in nautical miles, within which a
// coordinate is considered a possible match for a waypoint.
const PossibleMatchNM = 1.0

// Waypoint is a named reference point, such as an airport.
type Waypoint struct {
	ID        uuid.UUID
	Code      string // e.g. "JFK"
	Name      string
	Position  geo.Coordinate
	CreatedAt time.Time
}

// Match compares a coordinate against the waypoint's position.
func (w Waypoint) Match(c geo.Coordinate) MatchResult {
	if w.Position.Equal(c) {
		return MatchExact
	}
	if w.Position.DistanceTo(c) <= PossibleMatchNM {
		return MatchPossible
	}
	return MatchNone
}

// Label is the code followed by the name, e.g. "JFK (John F. Kennedy International)".
func (w Waypoint) Label() string {
	if w.Name == "" {
		return w.Code
	}
	return w.Code + " (" + w.Name + ")"
}

// normalizeCode makes codes case-insensitive.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
