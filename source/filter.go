package source

import "github.com/andy-lcw/awp-odc-os/grid"

// NoOwner is the Local.Rank sentinel for a partition that owns no sources.
const NoOwner = -1

// Local holds the fault nodes owned by one partition, coordinates translated
// to 1-based partition-local space (local = global - bound_min + 1). The six
// series are compacted copies; the global catalog can be discarded once the
// filter returns.
type Local struct {
	// Rank is the owning rank, or NoOwner when the partition owns nothing.
	Rank int

	X, Y, Z []int

	Axx, Ayy, Azz, Axz, Ayz, Axy [][]float32

	ReadStep int
}

func (l *Local) Len() int    { return len(l.X) }
func (l *Local) Owned() bool { return l.Rank != NoOwner }

// Filter selects the catalog nodes inside the partition's halo-inclusive
// bounds and remaps them to partition-local space. Pure: two passes over the
// catalog, the first sizing the output exactly, the second copying. A node is
// either fully owned (all six series copied) or fully excluded.
func Filter(c *Catalog, b grid.Bounds, rank int) *Local {
	l := &Local{Rank: NoOwner, ReadStep: c.ReadStep}

	n := 0
	for i := 0; i < c.Len(); i++ {
		if b.Contains(c.X[i], c.Y[i], c.Z[i]) {
			n++
		}
	}
	if n == 0 {
		return l
	}

	l.Rank = rank
	l.X, l.Y, l.Z = make([]int, 0, n), make([]int, 0, n), make([]int, 0, n)
	app := func(dst [][]float32, src []float32) [][]float32 {
		cp := make([]float32, c.ReadStep)
		copy(cp, src)
		return append(dst, cp)
	}
	for i := 0; i < c.Len(); i++ {
		if !b.Contains(c.X[i], c.Y[i], c.Z[i]) {
			continue
		}
		l.X = append(l.X, b.LocalX(c.X[i]))
		l.Y = append(l.Y, b.LocalY(c.Y[i]))
		l.Z = append(l.Z, b.LocalZ(c.Z[i]))
		l.Axx = app(l.Axx, c.Axx[i])
		l.Ayy = app(l.Ayy, c.Ayy[i])
		l.Azz = app(l.Azz, c.Azz[i])
		l.Axz = app(l.Axz, c.Axz[i])
		l.Ayz = app(l.Ayz, c.Ayz[i])
		l.Axy = app(l.Axy, c.Axy[i])
	}
	return l
}
