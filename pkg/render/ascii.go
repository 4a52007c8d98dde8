// Package render draws grids as text for terminals and logs.
package render

import (
	"strconv"
	"strings"

	"lucidia-engine/domain/core/aggregates"
)

const cellWidth = 8

// ASCII renders the grid as a box-drawing table of tile values, empty cells
// left blank.
func ASCII(grid *aggregates.Grid) string {
	size := grid.Size()
	board := grid.Board()

	var b strings.Builder
	writeRule(&b, "┌", "┬", "┐", size)

	for row := 0; row < size; row++ {
		b.WriteString("│")
		for col := 0; col < size; col++ {
			if tile := board[row][col]; tile != nil {
				b.WriteString(center(strconv.Itoa(tile.Value()), cellWidth))
			} else {
				b.WriteString(strings.Repeat(" ", cellWidth))
			}
			b.WriteString("│")
		}
		b.WriteString("\n")

		if row < size-1 {
			writeRule(&b, "├", "┼", "┤", size)
		}
	}

	writeRule(&b, "└", "┴", "┘", size)

	return strings.TrimSuffix(b.String(), "\n")
}

func writeRule(b *strings.Builder, left, mid, right string, size int) {
	b.WriteString(left)
	for i := 0; i < size; i++ {
		b.WriteString(strings.Repeat("─", cellWidth))
		if i < size-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := width - len(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
