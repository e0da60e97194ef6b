package world

import (
	"math/rand"
)

// Lattice is a rectangular grid of wall/open cells that a maze can be carved into.
type Lattice interface {
	Rows() int
	Cols() int
	IsWall(row, col int) bool
	Open(row, col int)
	MarkVisited(row, col int)
}

// IsCarvable reports whether a cell lies strictly inside the border and is still a wall.
func IsCarvable(l Lattice, row, col int) bool {
	return row > 0 && row < l.Rows()-1 && col > 0 && col < l.Cols()-1 && l.IsWall(row, col)
}

// CarveMaze opens a labyrinth of odd-aligned corridors with an iterative
// backtracking walk starting at (startRow, startCol). Every carved cell is
// reachable from the start: cells are joined by two-step jumps whose midpoint
// wall is knocked down.
func CarveMaze(l Lattice, startRow, startCol int, rng *rand.Rand) {
	type point struct{ row, col int }

	stack := []point{{startRow, startCol}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !IsCarvable(l, current.row, current.col) {
			continue
		}

		l.MarkVisited(current.row, current.col)
		l.Open(current.row, current.col)

		var neighbors []point
		for _, dir := range AllDirections() {
			dr, dc := dir.Delta()
			next := point{current.row + dr*2, current.col + dc*2}
			if IsCarvable(l, next.row, next.col) {
				neighbors = append(neighbors, next)
			}
		}

		rng.Shuffle(len(neighbors), func(i, j int) {
			neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
		})

		for _, n := range neighbors {
			if !IsCarvable(l, n.row, n.col) {
				continue
			}
			l.Open((current.row+n.row)/2, (current.col+n.col)/2)
			stack = append(stack, n)
		}
	}
}
