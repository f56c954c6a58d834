/*package geom maps continuous particle positions onto a uniform mesh of
cubic cells and provides an interface for reasoning over the flattened cell
array as if it were a 3D grid.*/
package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Grid is a uniform partition of a rectangular domain into cubic cells of
// width Spacing. A Grid is immutable after construction: consumers read its
// spacing and cell counts instead of re-deriving geometry.
//
// The cell width must be at least as large as the largest interaction
// radius any consumer searches with, so that a single cell ring contains
// every true neighbor at search depth one.
type Grid struct {
	Domain   r3.Box
	Spacing  float64
	Periodic bool

	Cells                [3]int
	Length, Area, Volume int
}

// NewGrid returns a new Grid over domain with the given cell width. The
// grid covers the whole domain, so the last cell along an axis may extend
// past Domain.Max. Invalid spacing or inverted bounds are construction
// errors.
func NewGrid(domain r3.Box, spacing float64, periodic bool) (*Grid, error) {
	if spacing <= 0 {
		return nil, fmt.Errorf(
			"Grid spacing must be positive, but is %g.", spacing,
		)
	}

	w := [3]float64{
		domain.Max.X - domain.Min.X,
		domain.Max.Y - domain.Min.Y,
		domain.Max.Z - domain.Min.Z,
	}
	dims := [3]string{"X", "Y", "Z"}
	for i := range w {
		if w[i] <= 0 {
			return nil, fmt.Errorf(
				"%s bounds of domain are inverted: min is not below max.",
				dims[i],
			)
		}
	}

	g := &Grid{Domain: domain, Spacing: spacing, Periodic: periodic}
	for i := range w {
		g.Cells[i] = int(math.Ceil(w[i] / spacing))
	}

	g.Length = g.Cells[0]
	g.Area = g.Cells[0] * g.Cells[1]
	g.Volume = g.Cells[0] * g.Cells[1] * g.Cells[2]

	return g, nil
}

// CellCoord returns the integer coordinate of the cell containing pos. The
// mapping floor-divides each component by the cell width after translating
// to the domain origin, so a position exactly on a cell boundary always
// belongs to the upper cell. Positions outside the domain are clamped to
// the nearest valid cell to tolerate numerical drift.
func (g *Grid) CellCoord(pos r3.Vec) [3]int {
	d := pos.Sub(g.Domain.Min)
	return [3]int{
		clamp(int(math.Floor(d.X/g.Spacing)), g.Cells[0]),
		clamp(int(math.Floor(d.Y/g.Spacing)), g.Cells[1]),
		clamp(int(math.Floor(d.Z/g.Spacing)), g.Cells[2]),
	}
}

func clamp(x, cells int) int {
	if x < 0 {
		return 0
	}
	if x >= cells {
		return cells - 1
	}
	return x
}

// Idx returns the flat cell index corresponding to a cell coordinate.
func (g *Grid) Idx(x, y, z int) int {
	return x + y*g.Length + z*g.Area
}

// Coords returns the x, y, z cell coordinate of a flat cell index.
func (g *Grid) Coords(idx int) (x, y, z int) {
	x = idx % g.Length
	y = (idx % g.Area) / g.Length
	z = idx / g.Area
	return x, y, z
}

// BoundsCheck returns true if the given cell coordinate is within the Grid
// and false otherwise.
func (g *Grid) BoundsCheck(x, y, z int) bool {
	return (x >= 0 && y >= 0 && z >= 0) &&
		(x < g.Cells[0] && y < g.Cells[1] && z < g.Cells[2])
}

// PMod computes the positive modulo x % cells.
func PMod(x, cells int) int {
	m := x % cells
	if m < 0 {
		m += cells
	}
	return m
}

// MinImage wraps the displacement d into the minimum image of a periodic
// domain. On bounded grids d is returned unchanged.
func (g *Grid) MinImage(d r3.Vec) r3.Vec {
	if !g.Periodic {
		return d
	}
	d.X = minImage(d.X, g.Domain.Max.X-g.Domain.Min.X)
	d.Y = minImage(d.Y, g.Domain.Max.Y-g.Domain.Min.Y)
	d.Z = minImage(d.Z, g.Domain.Max.Z-g.Domain.Min.Z)
	return d
}

func minImage(x, width float64) float64 {
	if x > +width/2 {
		return x - width
	}
	if x < -width/2 {
		return x + width
	}
	return x
}
