package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchDecompMapping(t *testing.T) {
	pd, err := NewPatchDecomp(10, 4, 4, 3, NewSoA)
	require.NoError(t, err)
	require.Equal(t, 3, pd.NumPatches())

	// 10 x-nodes over 3 patches: widths 4,3,3
	assert.Equal(t, 4, pd.Patch(0).NX)
	assert.Equal(t, 3, pd.Patch(1).NX)
	assert.Equal(t, 3, pd.Patch(2).NX)

	assert.Equal(t, 0, pd.GlobalToPatch(0, 0, 0))
	assert.Equal(t, 0, pd.GlobalToPatch(3, 1, 2))
	assert.Equal(t, 1, pd.GlobalToPatch(4, 0, 0))
	assert.Equal(t, 2, pd.GlobalToPatch(9, 3, 3))

	assert.Equal(t, 3, pd.GlobalToLocalX(3, 0, 0))
	assert.Equal(t, 0, pd.GlobalToLocalX(4, 0, 0))
	assert.Equal(t, 2, pd.GlobalToLocalX(9, 0, 0))
	assert.Equal(t, 2, pd.GlobalToLocalY(5, 2, 1))
	assert.Equal(t, 1, pd.GlobalToLocalZ(5, 2, 1))
}

func TestPatchDecompRejectsBadSplit(t *testing.T) {
	_, err := NewPatchDecomp(2, 4, 4, 3, NewSoA)
	assert.Error(t, err)
	_, err = NewPatchDecomp(0, 4, 4, 1, NewSoA)
	assert.Error(t, err)
}

// Both backends must behave identically through the interface.
func TestStressFieldBackends(t *testing.T) {
	for name, newField := range map[string]FieldFactory{
		"soa":         NewSoA,
		"interleaved": NewInterleaved,
	} {
		t.Run(name, func(t *testing.T) {
			f := newField(3, 4, 5)
			assert.Zero(t, f.Get(XX, 2, 3, 4))

			f.Add(XZ, 1, 2, 3, -2e-8)
			f.Add(XZ, 1, 2, 3, -1e-8)
			assert.InDelta(t, -3e-8, f.Get(XZ, 1, 2, 3), 1e-14)

			// neighbouring node and component untouched
			assert.Zero(t, f.Get(YZ, 1, 2, 3))
			assert.Zero(t, f.Get(XZ, 1, 2, 2))
		})
	}
}
