package geom

// CellBounds represents a bounding box aligned to grid cells.
type CellBounds struct {
	Origin, Width [3]int
}

// SearchBounds returns the cell-aligned box of radius depth cells around
// center. On bounded grids the box is clamped to the grid extent, so
// iterating it never reads outside the allocated cells. On periodic grids
// the origin may be negative and iteration must wrap coordinates with PMod;
// the width is capped at the axis cell count so no cell is visited twice.
func (g *Grid) SearchBounds(center [3]int, depth int) CellBounds {
	b := CellBounds{}
	for i := 0; i < 3; i++ {
		if g.Periodic {
			b.Origin[i] = center[i] - depth
			b.Width[i] = 2*depth + 1
			if b.Width[i] > g.Cells[i] {
				b.Width[i] = g.Cells[i]
			}
			continue
		}

		lo, hi := center[i]-depth, center[i]+depth+1
		if lo < 0 {
			lo = 0
		}
		if hi > g.Cells[i] {
			hi = g.Cells[i]
		}
		b.Origin[i] = lo
		b.Width[i] = hi - lo
	}
	return b
}

// Contains returns true if the given cell coordinate lies within the
// bounding box, wrapping periodically when the grid is periodic.
func (g *Grid) Contains(b *CellBounds, x, y, z int) bool {
	c := [3]int{x, y, z}
	for i := 0; i < 3; i++ {
		d := c[i] - b.Origin[i]
		if g.Periodic {
			d = PMod(d, g.Cells[i])
		}
		if d < 0 || d >= b.Width[i] {
			return false
		}
	}
	return true
}
