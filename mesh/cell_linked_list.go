/*package mesh implements the cell linked list used to build particle
configurations: per-cell membership lists over a body's particles, the
neighbor search that fills per-particle Neighborhoods from them, and the
colored split iteration used by pairwise-symmetric updates.*/
package mesh

import (
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sphlab/gosph/geom"
	"github.com/sphlab/gosph/run"
)

// ListData is the record the cell linked list caches for each particle in a
// cell: the particle's global index and a copy of its position, so the
// neighbor search inner loop never indirects through the full position
// array.
type ListData struct {
	Index int
	Pos   r3.Vec
}

// CellLinkedList indexes the particles of one body by the grid cell
// containing them. It caches positions but does not own them: membership is
// cleared and fully rebuilt on every Rebuild call and never carried across
// rebuilds.
type CellLinkedList struct {
	g     *geom.Grid
	cells [][]ListData

	cursors []int32 // scratch for the two-pass parallel rebuild
	split   [][]int // stride-3 color groups, increasing cell order
}

// NewCellLinkedList returns an empty cell linked list over g.
func NewCellLinkedList(g *geom.Grid) *CellLinkedList {
	cll := &CellLinkedList{
		g:       g,
		cells:   make([][]ListData, g.Volume),
		cursors: make([]int32, g.Volume),
	}
	cll.split = colorGroups(g)
	return cll
}

// Grid returns the underlying grid, exposing the cell spacing and total
// cell counts to geometry-dependent consumers.
func (cll *CellLinkedList) Grid() *geom.Grid { return cll.g }

// Cell returns the cached particle records of the cell at (x, y, z). The
// returned slice is read-only during search and valid until the next
// Rebuild.
func (cll *CellLinkedList) Cell(x, y, z int) []ListData {
	return cll.cells[cll.g.Idx(x, y, z)]
}

// Rebuild clears every membership list and reinserts all particles in pos.
//
// The parallel policy uses two passes: a counting pass sizes each cell with
// atomic per-cell counters, then a scatter pass writes the records through
// atomic write cursors. Concurrent inserts into the same cell are race-free
// without locks, but in-cell order is not stable across parallel runs. The
// sequential policy inserts in particle order.
func (cll *CellLinkedList) Rebuild(pol run.Policy, pos []r3.Vec) {
	if pol == run.Sequential {
		cll.rebuildSequential(pos)
		return
	}

	counts := cll.cursors
	for i := range counts {
		counts[i] = 0
	}

	run.For(pol, len(pos), func(i int) {
		c := cll.g.CellCoord(pos[i])
		atomic.AddInt32(&counts[cll.g.Idx(c[0], c[1], c[2])], 1)
	})

	for idx := range cll.cells {
		n := int(counts[idx])
		if cap(cll.cells[idx]) < n {
			cll.cells[idx] = make([]ListData, n)
		} else {
			cll.cells[idx] = cll.cells[idx][:n]
		}
		counts[idx] = 0
	}

	run.For(pol, len(pos), func(i int) {
		c := cll.g.CellCoord(pos[i])
		idx := cll.g.Idx(c[0], c[1], c[2])
		j := atomic.AddInt32(&counts[idx], 1) - 1
		cll.cells[idx][j] = ListData{i, pos[i]}
	})
}

func (cll *CellLinkedList) rebuildSequential(pos []r3.Vec) {
	for i := range cll.cells {
		cll.cells[i] = cll.cells[i][:0]
	}
	for i, p := range pos {
		c := cll.g.CellCoord(p)
		idx := cll.g.Idx(c[0], c[1], c[2])
		cll.cells[idx] = append(cll.cells[idx], ListData{i, p})
	}
}
