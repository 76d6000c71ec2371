package source

import "errors"

var (
	// ErrUnsupportedFormat marks the split/partitioned catalog mode, which is
	// not implemented; runs must use the legacy-binary mode instead.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	// ErrUnknownFormat marks a mode string outside the recognized set.
	ErrUnknownFormat = errors.New("unknown catalog format")

	// ErrMalformedRecord marks a catalog record whose fields fail to parse
	// (short read or type mismatch). Loading stops at the first bad record.
	ErrMalformedRecord = errors.New("malformed catalog record")

	// ErrStepOutOfRange marks an injection timestep outside the rupture
	// chunk held in memory.
	ErrStepOutOfRange = errors.New("timestep outside read chunk")
)
