package services

import (
	"fmt"

	"lucidia-engine/domain/core/aggregates"
	"lucidia-engine/domain/core/entities"
	"lucidia-engine/domain/core/valueobjects"
	"lucidia-engine/domain/events"
	pkgerrors "lucidia-engine/pkg/errors"
)

// compact slides every tile as far as it can travel toward the direction's
// edge and performs the merges encountered along the way. Lines are
// independent; within a line, tiles are processed nearest-edge first so each
// tile settles against already-settled neighbors. A tile participates in at
// most one merge per move, and a merge result never merges again in the same
// move.
func (e *Engine) compact(grid *aggregates.Grid, direction valueobjects.Direction) ([]events.TilesMerged, error) {
	mergedThisMove := make(map[string]bool)
	var merges []events.TilesMerged

	for _, line := range linesFor(grid, direction) {
		for _, tile := range line {
			from := tile.Position()
			cell := from

			for {
				next := cell.Step(direction)
				if !next.InBounds(grid.Size()) {
					break
				}

				neighbor, occupied := grid.TileAt(next)
				if !occupied {
					cell = next
					continue
				}

				if neighbor.Value() == tile.Value() && !mergedThisMove[neighbor.ID().String()] {
					concept := e.namer.ForMerge(neighbor.Concept(), tile.Concept(), grid.Domain())
					event, err := grid.MergeTiles(next, from, concept)
					if err != nil {
						return nil, pkgerrors.Wrap(err, fmt.Sprintf("merge into %s failed", next))
					}
					mergedThisMove[neighbor.ID().String()] = true
					merges = append(merges, event)
					cell = from // tile is gone; nothing left to relocate
				}
				break
			}

			if !cell.Equals(from) {
				if err := grid.MoveTile(from, cell); err != nil {
					return nil, pkgerrors.Wrap(err, fmt.Sprintf("move to %s failed", cell))
				}
			}
		}
	}

	return merges, nil
}

// linesFor returns the grid's tiles grouped by line of travel, each line
// ordered from the destination edge backward.
func linesFor(grid *aggregates.Grid, direction valueobjects.Direction) [][]*entities.Tile {
	size := grid.Size()
	lines := make([][]*entities.Tile, size)

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			var pos valueobjects.Position
			if direction.Horizontal() {
				pos = valueobjects.NewPosition(i, orderedIndex(direction, j, size))
			} else {
				pos = valueobjects.NewPosition(orderedIndex(direction, j, size), i)
			}
			if tile, ok := grid.TileAt(pos); ok {
				lines[i] = append(lines[i], tile)
			}
		}
	}

	return lines
}

// orderedIndex maps a scan offset to a board index so that offset 0 is the
// cell tiles travel toward.
func orderedIndex(direction valueobjects.Direction, offset, size int) int {
	switch direction {
	case valueobjects.DirectionRight, valueobjects.DirectionDown:
		return size - 1 - offset
	default:
		return offset
	}
}

// hasValidMoves reports whether any move can still change the board: an
// empty cell always suffices, otherwise two edge-adjacent tiles of equal
// value must exist.
func hasValidMoves(grid *aggregates.Grid) bool {
	if !grid.IsFull() {
		return true
	}

	size := grid.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			tile, ok := grid.TileAt(valueobjects.NewPosition(row, col))
			if !ok {
				return true
			}
			if right, ok := grid.TileAt(valueobjects.NewPosition(row, col+1)); ok && right.Value() == tile.Value() {
				return true
			}
			if below, ok := grid.TileAt(valueobjects.NewPosition(row+1, col)); ok && below.Value() == tile.Value() {
				return true
			}
		}
	}

	return false
}
