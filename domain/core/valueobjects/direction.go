package valueobjects

import "strings"

// Direction is the direction of travel for a move.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ParseDirection normalizes and validates a direction string.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionUp:
		return DirectionUp, true
	case DirectionDown:
		return DirectionDown, true
	case DirectionLeft:
		return DirectionLeft, true
	case DirectionRight:
		return DirectionRight, true
	default:
		return "", false
	}
}

// IsValid reports whether d is one of the four move directions.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	default:
		return false
	}
}

// Delta returns the (row, col) step toward the grid edge tiles travel to.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirectionUp:
		return -1, 0
	case DirectionDown:
		return 1, 0
	case DirectionLeft:
		return 0, -1
	case DirectionRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Horizontal reports whether the move travels along rows.
func (d Direction) Horizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// String returns the string representation
func (d Direction) String() string {
	return string(d)
}
