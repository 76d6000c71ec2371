package source

import (
	"fmt"

	"github.com/andy-lcw/awp-odc-os/grid"
)

// Inject applies the rupture-rate perturbation for chunk timestep i (0-based)
// at every owned node: each stress component is decremented by
// DT/DH³ * series[i]. The update is a point subtraction composing with the
// stencil solver's own update for the step. Patch id and patch-local
// coordinates are resolved through pd at call time.
func (l *Local) Inject(i int, dh, dt float64, pd *grid.PatchDecomp) error {
	if l.Len() == 0 {
		return nil
	}
	if i < 0 || i >= l.ReadStep {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrStepOutOfRange, i, l.ReadStep)
	}
	vtst := float32(dt / (dh * dh * dh))
	for j := 0; j < l.Len(); j++ {
		// 1-based partition-local to 0-based patch lookup space
		x, y, z := l.X[j]-1, l.Y[j]-1, l.Z[j]-1

		pid := pd.GlobalToPatch(x, y, z)
		lx := pd.GlobalToLocalX(x, y, z)
		ly := pd.GlobalToLocalY(x, y, z)
		lz := pd.GlobalToLocalZ(x, y, z)

		f := pd.Patch(pid).Stress
		f.Add(grid.XX, lx, ly, lz, -vtst*l.Axx[j][i])
		f.Add(grid.YY, lx, ly, lz, -vtst*l.Ayy[j][i])
		f.Add(grid.ZZ, lx, ly, lz, -vtst*l.Azz[j][i])
		f.Add(grid.XZ, lx, ly, lz, -vtst*l.Axz[j][i])
		f.Add(grid.YZ, lx, ly, lz, -vtst*l.Ayz[j][i])
		f.Add(grid.XY, lx, ly, lz, -vtst*l.Axy[j][i])
	}
	return nil
}
