// Package grid holds the global grid definition, the per-process partition
// decomposition, and the patch-decomposed stress field the solver and the
// fault sources both write into.
package grid

import "fmt"

// Definition describes the global simulation grid. Node indexing is 1-based
// in fault (file) space; z increases upward internally while catalog files
// store depth increasing downward.
type Definition struct {
	NX, NY, NZ int     // global node counts
	PX, PY     int     // 2-D process topology; each rank owns every z node
	DH         float64 // uniform spatial discretization [m]
	DT         float64 // timestep length [s]
}

func (d *Definition) Validate() error {
	if d.NX < 1 || d.NY < 1 || d.NZ < 1 {
		return fmt.Errorf("grid: node counts must be positive (%d,%d,%d)", d.NX, d.NY, d.NZ)
	}
	if d.PX < 1 || d.PY < 1 {
		return fmt.Errorf("grid: process topology must be positive (%dx%d)", d.PX, d.PY)
	}
	if d.NX%d.PX != 0 || d.NY%d.PY != 0 {
		return fmt.Errorf("grid: %dx%d nodes not divisible over %dx%d processes", d.NX, d.NY, d.PX, d.PY)
	}
	return nil
}
