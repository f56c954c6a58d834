package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/sphlab/gosph/geom"
	"github.com/sphlab/gosph/run"
)

// SearchDepth returns, per particle, how many cell widths the search box
// extends around the particle's own cell. Bodies with spatially varying
// interaction radii return varying depths; everything else uses
// UniformSearchDepth.
type SearchDepth func(i int) int

// UniformSearchDepth returns a SearchDepth that is depth for every
// particle.
func UniformSearchDepth(depth int) SearchDepth {
	return func(int) int { return depth }
}

// NeighborRelation decides whether candidate is a true neighbor of particle
// i at pos and, if so, appends a record to nh. The search box only
// over-approximates the interaction volume, so the relation must apply the
// exact cutoff test itself.
type NeighborRelation func(nh *Neighborhood, pos r3.Vec, i int, candidate ListData)

// SearchNeighbors fills conf[i] for every particle i in rng with the
// records the relation accepts. A nil rng processes every particle.
// Particles are processed independently with no ordering guarantee: each
// one scans the cell box of radius depth(i) around its own cell, clamped
// to the grid extent (or wrapped on periodic grids), and offers every
// cached record in those cells to rel. conf[i] is reset first, so a
// particle with no neighbors ends with an empty Neighborhood.
func (cll *CellLinkedList) SearchNeighbors(
	pol run.Policy, rng []int, pos []r3.Vec, conf Configuration,
	depth SearchDepth, rel NeighborRelation,
) {
	g := cll.g

	search := func(i int) {
		nh := conf[i][:0]
		if nh == nil {
			nh = Neighborhood{}
		}
		b := g.SearchBounds(g.CellCoord(pos[i]), depth(i))

		for dz := 0; dz < b.Width[2]; dz++ {
			z := b.Origin[2] + dz
			if g.Periodic {
				z = geom.PMod(z, g.Cells[2])
			}
			for dy := 0; dy < b.Width[1]; dy++ {
				y := b.Origin[1] + dy
				if g.Periodic {
					y = geom.PMod(y, g.Cells[1])
				}
				for dx := 0; dx < b.Width[0]; dx++ {
					x := b.Origin[0] + dx
					if g.Periodic {
						x = geom.PMod(x, g.Cells[0])
					}

					for _, data := range cll.cells[g.Idx(x, y, z)] {
						rel(&nh, pos[i], i, data)
					}
				}
			}
		}

		conf[i] = nh
	}

	if rng == nil {
		run.For(pol, len(pos), search)
	} else {
		run.ForIndexes(pol, rng, search)
	}
}

// RangeRelation returns the standard neighbor relation: a candidate
// qualifies when it lies strictly within cutoff of the particle. The self
// pair is excluded, and displacements use the minimum image on periodic
// grids. The kernel weight slots of appended records are left zero for the
// physics layer.
func (cll *CellLinkedList) RangeRelation(cutoff float64) NeighborRelation {
	g := cll.g
	cut2 := cutoff * cutoff

	return func(nh *Neighborhood, pos r3.Vec, i int, candidate ListData) {
		if candidate.Index == i {
			return
		}
		d := g.MinImage(pos.Sub(candidate.Pos))
		r2 := d.X*d.X + d.Y*d.Y + d.Z*d.Z
		if r2 < cut2 {
			*nh = append(*nh, Neighbor{
				Index: candidate.Index,
				Disp:  d,
				Dist:  math.Sqrt(r2),
			})
		}
	}
}
