package world

import (
	engineworld "mazearena/pkg/engine/world"
	"mazearena/pkg/game/entities"
)

// Grid is the arena: a fixed rectangle of cells addressed by row and column
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int
}

// NewGrid creates a grid where every cell is a wall
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]*Cell, rows)
	for row := 0; row < rows; row++ {
		g.cells[row] = make([]*Cell, cols)
		for col := 0; col < cols; col++ {
			g.cells[row][col] = &Cell{Row: row, Col: col, Wall: true}
		}
	}
	return g
}

// NewOpenGrid creates a grid with a wall border and an empty open interior
func NewOpenGrid(rows, cols int) *Grid {
	g := NewGrid(rows, cols)
	g.ForEachCell(func(row, col int, cell *Cell) {
		if g.IsPlayablePosition(row, col) {
			cell.Wall = false
		}
	})
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsPlayablePosition checks if a position is strictly inside the border
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && !g.IsPlayablePosition(row, col)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// GetCellRelative returns the cell adjacent to c in the given direction, or nil
func (g *Grid) GetCellRelative(c *Cell, dir engineworld.Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	dr, dc := dir.Delta()
	return g.GetCell(c.Row+dr, c.Col+dc)
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// OpenEmptyCells returns every open cell without an occupant, in row-major order
func (g *Grid) OpenEmptyCells() []*Cell {
	var cells []*Cell
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.IsEmpty() {
			cells = append(cells, cell)
		}
	})
	return cells
}

// CountOccupants returns the number of cells holding an occupant of the given kind
func (g *Grid) CountOccupants(kind entities.Kind) int {
	n := 0
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Occupant != nil && cell.Occupant.Kind() == kind {
			n++
		}
	})
	return n
}

// Neighborhood returns the in-bounds cells of the 3x3 block centred on (row, col)
func (g *Grid) Neighborhood(row, col int) []*Cell {
	cells := make([]*Cell, 0, 9)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if c := g.GetCell(row+dr, col+dc); c != nil {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// IsWall implements engineworld.Lattice
func (g *Grid) IsWall(row, col int) bool {
	return g.cells[row][col].Wall
}

// Open implements engineworld.Lattice
func (g *Grid) Open(row, col int) {
	g.cells[row][col].Wall = false
}

// MarkVisited implements engineworld.Lattice
func (g *Grid) MarkVisited(row, col int) {
	g.cells[row][col].Visited = true
}
