package world

import (
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

// boolLattice is a minimal Lattice backed by a wall matrix.
type boolLattice struct {
	walls   [][]bool
	visited [][]bool
}

func newBoolLattice(rows, cols int) *boolLattice {
	l := &boolLattice{
		walls:   make([][]bool, rows),
		visited: make([][]bool, rows),
	}
	for r := range l.walls {
		l.walls[r] = make([]bool, cols)
		l.visited[r] = make([]bool, cols)
		for c := range l.walls[r] {
			l.walls[r][c] = true
		}
	}
	return l
}

func (l *boolLattice) Rows() int { return len(l.walls) }

func (l *boolLattice) Cols() int { return len(l.walls[0]) }

func (l *boolLattice) IsWall(row, col int) bool { return l.walls[row][col] }

func (l *boolLattice) Open(row, col int) { l.walls[row][col] = false }

func (l *boolLattice) MarkVisited(row, col int) { l.visited[row][col] = true }

type cellPos struct{ row, col int }

// reachableFrom returns every open cell reachable from start via N/E/S/W.
func reachableFrom(l *boolLattice, start cellPos) mapset.Set[cellPos] {
	seen := mapset.New[cellPos]()
	queue := []cellPos{start}
	seen.Put(start)
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, dir := range AllDirections() {
			dr, dc := dir.Delta()
			n := cellPos{c.row + dr, c.col + dc}
			if n.row < 0 || n.row >= l.Rows() || n.col < 0 || n.col >= l.Cols() {
				continue
			}
			if l.walls[n.row][n.col] || seen.Has(n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}
	return seen
}

func TestCarveMaze_AllOpenCellsReachable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		l := newBoolLattice(21, 41)
		CarveMaze(l, 1, 1, rand.New(rand.NewSource(seed)))

		reachable := reachableFrom(l, cellPos{1, 1})
		open := 0
		for r := range l.walls {
			for c := range l.walls[r] {
				if l.walls[r][c] {
					continue
				}
				open++
				if !reachable.Has(cellPos{r, c}) {
					t.Errorf("seed %d: open cell (%d,%d) is not reachable from (1,1)", seed, r, c)
				}
			}
		}
		if open < 2 {
			t.Errorf("seed %d: carved only %d cells", seed, open)
		}
	}
}

func TestCarveMaze_LeavesBorderIntact(t *testing.T) {
	l := newBoolLattice(11, 11)
	CarveMaze(l, 1, 1, rand.New(rand.NewSource(7)))

	for i := 0; i < 11; i++ {
		if !l.walls[0][i] || !l.walls[10][i] || !l.walls[i][0] || !l.walls[i][10] {
			t.Fatalf("border cell opened at index %d", i)
		}
	}
}

func TestCarveMaze_OddCellsAreVisited(t *testing.T) {
	l := newBoolLattice(9, 9)
	CarveMaze(l, 1, 1, rand.New(rand.NewSource(3)))

	for r := 1; r < 8; r += 2 {
		for c := 1; c < 8; c += 2 {
			if l.walls[r][c] {
				t.Errorf("odd cell (%d,%d) still a wall", r, c)
			}
			if !l.visited[r][c] {
				t.Errorf("odd cell (%d,%d) not marked visited", r, c)
			}
		}
	}
}

func TestCarveMaze_StartOnBorderCarvesNothing(t *testing.T) {
	l := newBoolLattice(5, 5)
	CarveMaze(l, 0, 0, rand.New(rand.NewSource(1)))

	for r := range l.walls {
		for c := range l.walls[r] {
			if !l.walls[r][c] {
				t.Fatalf("cell (%d,%d) opened from a border start", r, c)
			}
		}
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"up":       North,
		" DOWN ":   South,
		"left":     West,
		"right":    East,
		"h":        North,
		"b":        South,
		"g":        West,
		"d":        East,
		"north":    North,
		"sideways": Invalid,
	}
	for token, want := range cases {
		if got := ParseDirection(token); got != want {
			t.Errorf("ParseDirection(%q) = %v, want %v", token, got, want)
		}
	}
}

func TestDirectionDeltaOpposite(t *testing.T) {
	for _, d := range AllDirections() {
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		if dr+or != 0 || dc+oc != 0 {
			t.Errorf("%v and its opposite do not cancel: (%d,%d) + (%d,%d)", d, dr, dc, or, oc)
		}
	}
}
