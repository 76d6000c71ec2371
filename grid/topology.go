package grid

import "fmt"

// halo is the horizontal ghost-layer width shared with neighbouring
// partitions; the vertical direction carries no halo.
const halo = 2

// Bounds is an inclusive box in 1-based global fault indexing: the calling
// partition's owned sub-volume extended by the halo.
type Bounds struct {
	Nbx, Nex int
	Nby, Ney int
	Nbz, Nez int
}

// Contains reports whether a global node index lies inside the box.
func (b Bounds) Contains(x, y, z int) bool {
	return x >= b.Nbx && x <= b.Nex &&
		y >= b.Nby && y <= b.Ney &&
		z >= b.Nbz && z <= b.Nez
}

// RangeX is the halo-inclusive local extent; Local*() coordinates fall in
// [1, Range*()].
func (b Bounds) RangeX() int { return b.Nex - b.Nbx + 1 }
func (b Bounds) RangeY() int { return b.Ney - b.Nby + 1 }
func (b Bounds) RangeZ() int { return b.Nez - b.Nbz + 1 }

// LocalX translates a global x index to 1-based partition-local space.
func (b Bounds) LocalX(x int) int { return x - b.Nbx + 1 }
func (b Bounds) LocalY(y int) int { return y - b.Nby + 1 }
func (b Bounds) LocalZ(z int) int { return z - b.Nbz + 1 }

// Topology assigns each rank its sub-volume of the global grid. The process
// grid is 2-D over x and y; every rank owns the full vertical column.
type Topology struct {
	d        *Definition
	nxt, nyt int // interior node counts per rank
}

func NewTopology(d *Definition) (*Topology, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Topology{d: d, nxt: d.NX / d.PX, nyt: d.NY / d.PY}, nil
}

func (t *Topology) NumRanks() int { return t.d.PX * t.d.PY }

// Coords returns the rank's position in the process grid.
func (t *Topology) Coords(rank int) (cx, cy int) {
	return rank % t.d.PX, rank / t.d.PX
}

// Interior returns the rank's owned sub-volume without the halo, as an
// inclusive box in global indexing.
func (t *Topology) Interior(rank int) Bounds {
	cx, cy := t.Coords(rank)
	sx := t.nxt*cx + 1
	sy := t.nyt*cy + 1
	return Bounds{
		Nbx: sx, Nex: sx + t.nxt - 1,
		Nby: sy, Ney: sy + t.nyt - 1,
		Nbz: 1, Nez: t.d.NZ,
	}
}

// PartitionBounds returns the rank's halo-inclusive ownership box used for
// the fault-source membership test.
func (t *Topology) PartitionBounds(rank int) (Bounds, error) {
	if rank < 0 || rank >= t.NumRanks() {
		return Bounds{}, fmt.Errorf("grid: rank %d outside %d-rank topology", rank, t.NumRanks())
	}
	b := t.Interior(rank)
	b.Nbx -= halo
	b.Nex += halo
	b.Nby -= halo
	b.Ney += halo
	return b, nil
}
