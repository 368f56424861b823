package models

import "strings"

// Position defines where a player lines up
type Position string

const (
	PositionGoalkeeper Position = "PORTERO"
	PositionDefender   Position = "DEFENSA"
	PositionMidfielder Position = "MEDIO"
	PositionForward    Position = "DELANTERO"
)

var positionLabels = map[Position]string{
	PositionGoalkeeper: "Portero",
	PositionDefender:   "Defensa",
	PositionMidfielder: "Medio",
	PositionForward:    "Delantero",
}

// Positions returns every position in lineup order
func Positions() []Position {
	return []Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}
}

// IsValid checks if the Position is valid
func (p Position) IsValid() bool {
	_, ok := positionLabels[p]
	return ok
}

// Label returns the display name of the position
func (p Position) Label() string {
	return positionLabels[p]
}

// ParsePosition resolves a position name case-insensitively
func ParsePosition(s string) (Position, bool) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.IsValid()
}
