package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sphlab/gosph/geom"
	"github.com/sphlab/gosph/run"
)

// MultilevelCellLinkedList composes independent single-level cell linked
// lists over the same domain at different resolutions, for bodies whose
// particle spacing varies in space. Whole-structure operations dispatch to
// every level in a fixed construction order. There is no cross-level search
// fusion: a consumer needing multi-resolution neighbors queries each level
// and merges the results itself.
type MultilevelCellLinkedList struct {
	levels []*CellLinkedList
}

// NewMultilevelCellLinkedList builds totalLevels grids over domain. Level 0
// is the finest; the cell spacing doubles with each coarser level up to
// coarsestSpacing.
func NewMultilevelCellLinkedList(
	domain r3.Box, coarsestSpacing float64, totalLevels int, periodic bool,
) (*MultilevelCellLinkedList, error) {
	if totalLevels < 1 {
		return nil, fmt.Errorf(
			"Need at least one mesh level, but %d were requested.",
			totalLevels,
		)
	}

	ml := &MultilevelCellLinkedList{
		levels: make([]*CellLinkedList, totalLevels),
	}

	spacing := coarsestSpacing
	for l := totalLevels - 1; l >= 0; l-- {
		g, err := geom.NewGrid(domain, spacing, periodic)
		if err != nil {
			return nil, err
		}
		ml.levels[l] = NewCellLinkedList(g)
		spacing /= 2
	}

	return ml, nil
}

// NewMultilevelFromLists composes already-constructed levels. The given
// order is preserved for every dispatched operation.
func NewMultilevelFromLists(levels ...*CellLinkedList) *MultilevelCellLinkedList {
	return &MultilevelCellLinkedList{levels: levels}
}

// Levels returns the number of levels.
func (ml *MultilevelCellLinkedList) Levels() int { return len(ml.levels) }

// Level returns the cell linked list of level l, finest first.
func (ml *MultilevelCellLinkedList) Level(l int) *CellLinkedList {
	return ml.levels[l]
}

// Rebuild rebuilds every level from the same particle positions, in level
// order. Each level indexes the full particle set independently.
func (ml *MultilevelCellLinkedList) Rebuild(pol run.Policy, pos []r3.Vec) {
	for _, cll := range ml.levels {
		cll.Rebuild(pol, pos)
	}
}

// ForSplit runs the colored double sweep of every level in level order.
// Split-iteration correctness holds per level; no cross-level ordering is
// guaranteed or needed, since the levels index disjoint cell data.
func (ml *MultilevelCellLinkedList) ForSplit(pol run.Policy, fn func(i int)) {
	for _, cll := range ml.levels {
		cll.ForSplit(pol, fn)
	}
}

// ParticleForSplit runs dyn with ForSplit across all levels.
func (ml *MultilevelCellLinkedList) ParticleForSplit(pol run.Policy, dyn LocalDynamics) {
	ml.ForSplit(pol, dyn.Update)
}
