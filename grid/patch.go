package grid

import "fmt"

// Patch is one block of a partition's sub-volume with its own field storage.
type Patch struct {
	X0         int // x offset within the partition (0-based)
	NX, NY, NZ int
	Stress     StressField
}

// PatchDecomp splits a partition's halo-inclusive sub-volume into patches
// along x and maps partition coordinates to (patch id, patch-local)
// coordinates. Patch assignment is static for the run; callers look
// coordinates up per call rather than caching them.
type PatchDecomp struct {
	NX, NY, NZ int // partition-local extents (halo-inclusive)
	patches    []Patch
	x0         []int // patch p covers x in [x0[p], x0[p+1])
}

// NewPatchDecomp builds npatch patches over an nx*ny*nz sub-volume, sizing
// each patch's stress storage with the supplied backend factory.
func NewPatchDecomp(nx, ny, nz, npatch int, newField FieldFactory) (*PatchDecomp, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("grid: patch decomposition over empty volume (%d,%d,%d)", nx, ny, nz)
	}
	if npatch < 1 || npatch > nx {
		return nil, fmt.Errorf("grid: cannot split %d x-nodes into %d patches", nx, npatch)
	}
	pd := &PatchDecomp{
		NX: nx, NY: ny, NZ: nz,
		patches: make([]Patch, npatch),
		x0:      make([]int, npatch+1),
	}
	base, rem := nx/npatch, nx%npatch
	for p := 0; p < npatch; p++ {
		w := base
		if p < rem {
			w++
		}
		pd.x0[p+1] = pd.x0[p] + w
		pd.patches[p] = Patch{X0: pd.x0[p], NX: w, NY: ny, NZ: nz, Stress: newField(w, ny, nz)}
	}
	return pd, nil
}

func (pd *PatchDecomp) NumPatches() int     { return len(pd.patches) }
func (pd *PatchDecomp) Patch(id int) *Patch { return &pd.patches[id] }

// GlobalToPatch maps a 0-based partition-local coordinate to its patch id.
func (pd *PatchDecomp) GlobalToPatch(x, y, z int) int {
	for p := 1; p < len(pd.x0); p++ {
		if x < pd.x0[p] {
			return p - 1
		}
	}
	return len(pd.patches) - 1
}

// GlobalToLocalX maps a 0-based partition-local coordinate to its
// patch-local x index.
func (pd *PatchDecomp) GlobalToLocalX(x, y, z int) int {
	return x - pd.x0[pd.GlobalToPatch(x, y, z)]
}

func (pd *PatchDecomp) GlobalToLocalY(x, y, z int) int { return y }
func (pd *PatchDecomp) GlobalToLocalZ(x, y, z int) int { return z }
