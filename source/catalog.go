// Package source loads a fault-rupture point-source catalog, filters it down
// to the nodes a partition owns, and injects the rupture-rate perturbation
// into the partition's stress field once per timestep.
package source

// CatalogConfig carries the loader's parameters; partition state is passed
// explicitly alongside it rather than read from ambient process globals.
type CatalogConfig struct {
	Format      Format
	Count       int // NSRC, catalog length
	ReadStep    int // rupture samples held in memory per node
	TotalSteps  int // NST, samples per node on file (legacy-binary records)
	NZ          int // vertical grid extent, for the depth-axis flip
	Path        string
	SplitPrefix string // split mode only; that mode is rejected
	// Strict turns a missing/unreadable catalog into an error. When false a
	// failed open degrades to an empty catalog with a diagnostic, matching
	// the historical behaviour.
	Strict bool
}

// Catalog is the full source list in global coordinates, one entry per fault
// node. Coordinates are 1-based; z is stored flipped (NZ+1-z_file) so depth
// on file becomes the internal upward-increasing index. Immutable after load.
type Catalog struct {
	X, Y, Z []int

	// Rupture-rate series, [node][step], step < ReadStep.
	Axx, Ayy, Azz, Axz, Ayz, Axy [][]float32

	ReadStep int
}

func (c *Catalog) Len() int { return len(c.X) }

func newCatalog(n, readStep int) *Catalog {
	c := &Catalog{
		X: make([]int, n), Y: make([]int, n), Z: make([]int, n),
		ReadStep: readStep,
	}
	alloc := func() [][]float32 {
		a := make([][]float32, n)
		for i := range a {
			a[i] = make([]float32, readStep)
		}
		return a
	}
	c.Axx, c.Ayy, c.Azz = alloc(), alloc(), alloc()
	c.Axz, c.Ayz, c.Axy = alloc(), alloc(), alloc()
	return c
}

// series returns the six component series of node i in grid.Comp order.
func (c *Catalog) series(i int) [6][]float32 {
	return [6][]float32{c.Axx[i], c.Ayy[i], c.Azz[i], c.Axz[i], c.Ayz[i], c.Axy[i]}
}
