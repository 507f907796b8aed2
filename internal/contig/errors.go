package contig

import "errors"

// Layout computation fails with exactly one of these two kinds. Both
// are returned wrapped via fmt.Errorf("%w: ...") with a human-readable
// reason; match them with errors.Is.
var (
	// ErrOverflow reports that a computed or requested footprint
	// exceeds the maximum representable element index.
	ErrOverflow = errors.New("contig: layout size overflow")

	// ErrInvalidSize reports a configuration value that is
	// structurally invalid for its adapter.
	ErrInvalidSize = errors.New("contig: invalid size")
)
