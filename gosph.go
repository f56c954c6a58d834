/*package gosph is the spatial discretization core of a smoothed particle
hydrodynamics code: a cell-linked-list mesh over particle positions, the
neighbor search that builds per-particle interaction configurations from
it, a colored split iteration for pairwise-symmetric updates, and a
multilevel variant for bodies with spatially varying particle spacing.

The physics layer (kernels, material models, integrators) sits on top of
this package tree and consumes the Neighborhood structures it produces.

See the geom, mesh and run packages for the library surface, the io
package for configuration and snapshot reading, and main/ for a small
command that builds a mesh from a config and a snapshot and reports
occupancy and neighbor statistics.*/
package gosph
