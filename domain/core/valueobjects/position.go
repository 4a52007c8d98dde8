package valueobjects

import "fmt"

// Position locates a tile on the grid. Row and column are zero-based;
// (0,0) is the top-left cell.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewPosition creates a position without bounds knowledge; bounds are a grid
// concern and checked by InBounds.
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// InBounds reports whether the position fits a size×size grid.
func (p Position) InBounds(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// Step returns the neighboring position one cell along the direction of travel.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Equals checks if two positions are equal
func (p Position) Equals(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// String returns the string representation, e.g. "(2,3)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
