/*package io reads mesh configuration files and plain-text particle
snapshots.*/
package io

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/gcfg.v1"
)

const ExampleMeshFile = `[Domain]

#######################
# Required Parameters #
#######################

# Lower and upper corners of the simulated domain.
XMin = 0
YMin = 0
ZMin = 0
XMax = 10
YMax = 10
ZMax = 10

# Cell width of the coarsest mesh level. Must be at least as large as the
# largest interaction radius the physics layer searches with.
Spacing = 1.0

#######################
# Optional Parameters #
#######################

# Wrap cell neighborhoods and displacements across the domain boundaries.
# Periodic = false

[Mesh]

# Number of mesh levels. Level 0 is the finest; the cell spacing doubles
# with each coarser level. Bodies with uniform particle spacing use a
# single level.
# Levels = 1`

// DomainConfig describes the simulated domain and the coarsest cell width.
type DomainConfig struct {
	// Required
	XMin, YMin, ZMin float64
	XMax, YMax, ZMax float64
	Spacing          float64

	// Optional
	Periodic bool
}

// MeshConfig holds the mesh-level parameters.
type MeshConfig struct {
	Levels int
}

// MeshFileConfig is the top-level layout of a mesh configuration file.
type MeshFileConfig struct {
	Domain DomainConfig
	Mesh   MeshConfig
}

// CheckInit validates a DomainConfig after it has been read.
func (dom *DomainConfig) CheckInit() error {
	if dom.Spacing <= 0 {
		return fmt.Errorf(
			"Need to specify a positive Spacing, but got %g.", dom.Spacing,
		)
	}

	if dom.XMax <= dom.XMin {
		return fmt.Errorf(
			"XMax must be above XMin, but [%g, %g] was given.",
			dom.XMin, dom.XMax,
		)
	} else if dom.YMax <= dom.YMin {
		return fmt.Errorf(
			"YMax must be above YMin, but [%g, %g] was given.",
			dom.YMin, dom.YMax,
		)
	} else if dom.ZMax <= dom.ZMin {
		return fmt.Errorf(
			"ZMax must be above ZMin, but [%g, %g] was given.",
			dom.ZMin, dom.ZMax,
		)
	}

	return nil
}

// CheckInit validates a MeshConfig after it has been read. An unset level
// count defaults to a single level.
func (mc *MeshConfig) CheckInit() error {
	if mc.Levels == 0 {
		mc.Levels = 1
	} else if mc.Levels < 0 {
		return fmt.Errorf(
			"Mesh given a negative level count, %d.", mc.Levels,
		)
	}
	return nil
}

// Box returns the configured domain bounds.
func (dom *DomainConfig) Box() r3.Box {
	return r3.Box{
		Min: r3.Vec{X: dom.XMin, Y: dom.YMin, Z: dom.ZMin},
		Max: r3.Vec{X: dom.XMax, Y: dom.YMax, Z: dom.ZMax},
	}
}

// ReadMeshConfig reads and validates a mesh configuration file.
func ReadMeshConfig(fname string) (*MeshFileConfig, error) {
	cfg := &MeshFileConfig{}
	if err := gcfg.ReadFileInto(cfg, fname); err != nil {
		return nil, err
	}

	if err := cfg.Domain.CheckInit(); err != nil {
		return nil, err
	}
	if err := cfg.Mesh.CheckInit(); err != nil {
		return nil, err
	}

	return cfg, nil
}
