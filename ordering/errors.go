package ordering

import "errors"

// Sentinel errors returned by Validate. Callers must use errors.Is to
// branch on semantics, following the sentinel-error convention this
// codebase uses throughout (never compare error strings).
var (
	// ErrWrongLength indicates the ordering's length does not match the
	// graph's vertex-slab size.
	ErrWrongLength = errors.New("ordering: wrong length")

	// ErrUnplacedVertex indicates a position still holds the initial -1
	// sentinel, meaning the heuristic that produced it never completed.
	ErrUnplacedVertex = errors.New("ordering: unplaced vertex")

	// ErrOutOfRange indicates an entry names a vertex id outside the
	// graph's id space.
	ErrOutOfRange = errors.New("ordering: vertex id out of range")

	// ErrDuplicateVertex indicates some vertex id appears more than once,
	// meaning the ordering is not a permutation.
	ErrDuplicateVertex = errors.New("ordering: duplicate vertex")
)
