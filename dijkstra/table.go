package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/allpairs/core"
)

// Table is the square (source × destination) matrix produced by Compute.
// Cells are stored row-major in a flat slice. Exported methods take 1-based
// vertex numbers. A Table is immutable once Compute returns.
type Table struct {
	n     int
	cells []Cell
}

// newTable allocates an n×n table with every cell unreached.
func newTable(n int) *Table {
	t := &Table{n: n, cells: make([]Cell, n*n)}
	for i := range t.cells {
		t.cells[i] = unreached
	}

	return t
}

func (t *Table) row(s int) []Cell { return t.cells[s*t.n : (s+1)*t.n] }

func (t *Table) set(s, d int, c Cell) { t.cells[s*t.n+d] = c }

// at returns the cell for 0-based indices.
func (t *Table) at(s, d int) Cell { return t.cells[s*t.n+d] }

// index validates a 1-based pair and returns 0-based indices.
func (t *Table) index(source, destination int) (int, int, error) {
	if source < 1 || source > t.n {
		return 0, 0, fmt.Errorf("%w: source %d", core.ErrInvalidIndex, source)
	}
	if destination < 1 || destination > t.n {
		return 0, 0, fmt.Errorf("%w: destination %d", core.ErrInvalidIndex, destination)
	}

	return source - 1, destination - 1, nil
}

// Size returns the number of vertices the table was computed for.
func (t *Table) Size() int { return t.n }

// Cell returns the (source, destination) cell.
func (t *Table) Cell(source, destination int) (Cell, error) {
	s, d, err := t.index(source, destination)
	if err != nil {
		return Cell{}, err
	}

	return t.at(s, d), nil
}

// Dist returns the shortest distance, Infinite when unreachable.
func (t *Table) Dist(source, destination int) (int64, error) {
	c, err := t.Cell(source, destination)
	if err != nil {
		return Infinite, err
	}

	return c.Dist, nil
}

// Reachable reports whether destination can be reached from source.
// Invalid vertex numbers are reported as unreachable.
func (t *Table) Reachable(source, destination int) bool {
	c, err := t.Cell(source, destination)

	return err == nil && c.Reachable()
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{n: t.n, cells: make([]Cell, len(t.cells))}
	copy(c.cells, t.cells)

	return c
}

// Equal reports whether both tables have the same size and identical cells.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.n != other.n {
		return false
	}
	for i := range t.cells {
		if t.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}
