package grid

// Comp indexes the six independent stress-tensor components, in catalog
// column order.
type Comp int

const (
	XX Comp = iota
	YY
	ZZ
	XZ
	YZ
	XY
)

// NComp is the number of independent stress-tensor components.
const NComp = 6

// StressField is one patch's mutable stress storage. Two interchangeable
// backends exist; the source injector and the stencil kernels are written
// against this interface and pick a backend at composition time.
type StressField interface {
	Get(c Comp, x, y, z int) float32
	Add(c Comp, x, y, z int, delta float32)
}

// FieldFactory builds a patch-sized backend instance.
type FieldFactory func(nx, ny, nz int) StressField

// SoAField stores each component in its own linear x-major array.
type SoAField struct {
	nx, ny, nz int
	comp       [NComp][]float32
}

func NewSoA(nx, ny, nz int) StressField {
	f := &SoAField{nx: nx, ny: ny, nz: nz}
	for c := range f.comp {
		f.comp[c] = make([]float32, nx*ny*nz)
	}
	return f
}

func (f *SoAField) at(x, y, z int) int { return (x*f.ny+y)*f.nz + z }

func (f *SoAField) Get(c Comp, x, y, z int) float32 { return f.comp[c][f.at(x, y, z)] }

func (f *SoAField) Add(c Comp, x, y, z int, delta float32) {
	f.comp[c][f.at(x, y, z)] += delta
}

// InterleavedField keeps the six components of a node adjacent in one array,
// the layout the vectorized kernel backend wants.
type InterleavedField struct {
	nx, ny, nz int
	data       []float32
}

func NewInterleaved(nx, ny, nz int) StressField {
	return &InterleavedField{nx: nx, ny: ny, nz: nz, data: make([]float32, nx*ny*nz*NComp)}
}

func (f *InterleavedField) at(c Comp, x, y, z int) int {
	return ((x*f.ny+y)*f.nz+z)*NComp + int(c)
}

func (f *InterleavedField) Get(c Comp, x, y, z int) float32 { return f.data[f.at(c, x, y, z)] }

func (f *InterleavedField) Add(c Comp, x, y, z int, delta float32) {
	f.data[f.at(c, x, y, z)] += delta
}
