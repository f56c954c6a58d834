package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Neighbor is one record in a particle's Neighborhood: the neighbor's
// global index, the displacement from the neighbor to the particle (minimum
// image on periodic grids), the separation, and the kernel weight slots
// the physics layer fills in.
type Neighbor struct {
	Index int
	Disp  r3.Vec
	Dist  float64

	W, DW float64
}

// Neighborhood collects the qualified interaction partners of one particle.
// It is recreated on every neighbor search; a particle with no neighbors
// has an empty, not absent, Neighborhood.
type Neighborhood []Neighbor

// Configuration owns the Neighborhoods of one body, keyed by particle
// index. Each slot is written only by its own particle during a parallel
// search.
type Configuration []Neighborhood

// NewConfiguration returns an empty Configuration for a body of n
// particles. Every slot starts as an empty, non-nil Neighborhood.
func NewConfiguration(n int) Configuration {
	conf := make(Configuration, n)
	for i := range conf {
		conf[i] = Neighborhood{}
	}
	return conf
}
