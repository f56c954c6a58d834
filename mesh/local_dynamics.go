package mesh

import (
	"github.com/sphlab/gosph/run"
)

// LocalDynamics is the capability interface implemented by per-index local
// dynamics: a single Update operation keyed by particle index. An
// implementation holds non-owning references to the mesh structures it
// reads; the owning body controls their lifetime.
type LocalDynamics interface {
	Update(index int)
}

// DynamicsFunc adapts a plain function to the LocalDynamics interface.
type DynamicsFunc func(index int)

// Update calls f(index).
func (f DynamicsFunc) Update(index int) { f(index) }

// ParticleForSplit runs dyn over every indexed particle with the colored
// double sweep of ForSplit.
func (cll *CellLinkedList) ParticleForSplit(pol run.Policy, dyn LocalDynamics) {
	cll.ForSplit(pol, dyn.Update)
}
