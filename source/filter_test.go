package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy-lcw/awp-odc-os/grid"
)

// testCatalog builds a catalog with recognizable per-node series.
func testCatalog(nodes [][3]int, readStep int) *Catalog {
	c := newCatalog(len(nodes), readStep)
	for i, n := range nodes {
		c.X[i], c.Y[i], c.Z[i] = n[0], n[1], n[2]
		sr := c.series(i)
		for k := range sr {
			for j := 0; j < readStep; j++ {
				sr[k][j] = float32(i*100 + k*10 + j)
			}
		}
	}
	return c
}

func TestFilterOwnership(t *testing.T) {
	b := grid.Bounds{Nbx: 5, Nex: 12, Nby: 3, Ney: 10, Nbz: 1, Nez: 8}
	c := testCatalog([][3]int{
		{5, 3, 1},   // at the lower halo-inclusive corner: owned
		{4, 3, 1},   // one below nbx: not owned
		{12, 10, 8}, // upper corner: owned
		{13, 10, 8}, // past nex: not owned
		{8, 6, 9},   // past nez: not owned
	}, 2)

	l := Filter(c, b, 7)
	require.True(t, l.Owned())
	assert.Equal(t, 7, l.Rank)
	require.Equal(t, 2, l.Len())

	// local = global - bound_min + 1
	assert.Equal(t, []int{1, 8}, l.X)
	assert.Equal(t, []int{1, 8}, l.Y)
	assert.Equal(t, []int{1, 8}, l.Z)

	// series copied from the right nodes (node 0 and node 2)
	assert.Equal(t, float32(0), l.Axx[0][0])
	assert.Equal(t, float32(221), l.Azz[1][1]) // node 2, zz component, step 1
}

func TestFilterRoundTrip(t *testing.T) {
	b := grid.Bounds{Nbx: -1, Nex: 10, Nby: 2, Ney: 9, Nbz: 1, Nez: 6}
	c := testCatalog([][3]int{{0, 4, 2}, {10, 9, 6}, {-1, 2, 1}}, 1)

	l := Filter(c, b, 0)
	require.Equal(t, 3, l.Len())
	for j := 0; j < l.Len(); j++ {
		assert.Equal(t, c.X[j], b.Nbx+l.X[j]-1)
		assert.Equal(t, c.Y[j], b.Nby+l.Y[j]-1)
		assert.Equal(t, c.Z[j], b.Nbz+l.Z[j]-1)
		assert.GreaterOrEqual(t, l.X[j], 1)
		assert.LessOrEqual(t, l.X[j], b.RangeX())
	}
}

func TestFilterNonOwning(t *testing.T) {
	b := grid.Bounds{Nbx: 100, Nex: 110, Nby: 100, Ney: 110, Nbz: 1, Nez: 8}
	l := Filter(testCatalog([][3]int{{1, 1, 1}}, 2), b, 3)

	assert.False(t, l.Owned())
	assert.Equal(t, NoOwner, l.Rank)
	assert.Zero(t, l.Len())
	assert.Nil(t, l.X)
	assert.Nil(t, l.Axx)
}

func TestFilterCopiesSeries(t *testing.T) {
	b := grid.Bounds{Nbx: 1, Nex: 8, Nby: 1, Ney: 8, Nbz: 1, Nez: 8}
	c := testCatalog([][3]int{{2, 2, 2}}, 2)

	l := Filter(c, b, 0)
	require.Equal(t, 1, l.Len())
	c.Axx[0][0] = -999 // mutating the catalog must not reach the copy
	assert.Equal(t, float32(0), l.Axx[0][0])
}

// Every catalog node lands on exactly one interior and at least one
// halo-inclusive partition across a full topology.
func TestFilterPartitionUnion(t *testing.T) {
	d := &grid.Definition{NX: 12, NY: 12, NZ: 6, PX: 2, PY: 2, DH: 100., DT: .01}
	topo, err := grid.NewTopology(d)
	require.NoError(t, err)

	var nodes [][3]int
	for x := 1; x <= d.NX; x += 2 {
		for y := 1; y <= d.NY; y += 3 {
			nodes = append(nodes, [3]int{x, y, 1 + (x+y)%d.NZ})
		}
	}
	c := testCatalog(nodes, 1)

	owned := make([]int, c.Len())
	for r := 0; r < topo.NumRanks(); r++ {
		b, err := topo.PartitionBounds(r)
		require.NoError(t, err)
		l := Filter(c, b, r)
		assert.Equal(t, l.Len() > 0, l.Owned())

		for i := 0; i < c.Len(); i++ {
			if topo.Interior(r).Contains(c.X[i], c.Y[i], c.Z[i]) {
				owned[i]++
			}
		}
		// the filtered set is exactly the nodes inside the haloed box
		count := 0
		for i := 0; i < c.Len(); i++ {
			if b.Contains(c.X[i], c.Y[i], c.Z[i]) {
				count++
			}
		}
		assert.Equal(t, count, l.Len())
	}
	for i, n := range owned {
		assert.Equal(t, 1, n, "node %d claimed by %d interiors", i, n)
	}
}
