package mesh

import (
	"github.com/sphlab/gosph/geom"
	"github.com/sphlab/gosph/run"
)

// splitStride is the coloring stride of the split iteration. Cells of the
// same color are at least two cells apart along every axis, wrap included,
// so their interaction radii never bridge them.
const splitStride = 3

// axisColor returns the color of cell coordinate x along an axis of the
// given cell count. On periodic axes whose count leaves remainder one
// under the stride, the straight modulo would color the last cell like
// cell zero, its wrap neighbor; that cell is moved to the middle color,
// which keeps it at least two cells from every other member on both sides
// of the boundary.
func axisColor(x, cells int, periodic bool) int {
	if periodic && cells > 1 && cells%splitStride == 1 && x == cells-1 {
		return 1
	}
	return x % splitStride
}

// colorGroups partitions the flat cell indices of g into stride-3 color
// groups. Groups are ordered by increasing color offset and cells within a
// group by increasing flat index.
func colorGroups(g *geom.Grid) [][]int {
	groups := make([][]int, splitStride*splitStride*splitStride)
	for i := range groups {
		groups[i] = []int{}
	}

	for z := 0; z < g.Cells[2]; z++ {
		cz := axisColor(z, g.Cells[2], g.Periodic)
		for y := 0; y < g.Cells[1]; y++ {
			cy := axisColor(y, g.Cells[1], g.Periodic)
			for x := 0; x < g.Cells[0]; x++ {
				cx := axisColor(x, g.Cells[0], g.Periodic)
				c := cx + splitStride*(cy+splitStride*cz)
				groups[c] = append(groups[c], g.Idx(x, y, z))
			}
		}
	}

	return groups
}

// ForSplit runs fn over every indexed particle with the colored double
// sweep required by pairwise-symmetric updates that mutate shared state.
// Cells in the same color group are mutually non-adjacent, so they run
// concurrently under the parallel policy without synchronization; color
// groups run strictly after one another.
//
// Two passes are made: a forward sweep over the groups in increasing cell
// order, then a backward sweep in decreasing order with each cell's
// particle list walked in reverse. The second pass cancels the truncation-
// order bias a single direction would leave in symmetric accumulations.
func (cll *CellLinkedList) ForSplit(pol run.Policy, fn func(i int)) {
	for k := 0; k < len(cll.split); k++ {
		group := cll.split[k]
		run.For(pol, len(group), func(j int) {
			for _, data := range cll.cells[group[j]] {
				fn(data.Index)
			}
		})
	}

	for k := len(cll.split) - 1; k >= 0; k-- {
		group := cll.split[k]
		run.For(pol, len(group), func(j int) {
			list := cll.cells[group[len(group)-1-j]]
			for n := len(list); n != 0; n-- {
				fn(list[n-1].Index)
			}
		})
	}
}
