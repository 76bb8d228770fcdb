package tree

import "errors"

// Sentinel errors shared by every engine in this package.
var (
	// ErrNotFound names a lookup miss on a key. No engine returns it:
	// Search, Remove and PositionOf report a miss with a false boolean.
	ErrNotFound = errors.New("tree: key not found")

	// ErrDuplicate indicates Insert found an equal key already present.
	ErrDuplicate = errors.New("tree: duplicate key")

	// ErrOutOfRange indicates an order-statistic index outside its valid range.
	ErrOutOfRange = errors.New("tree: index out of range")

	// ErrDomain indicates a precondition violation (overlapping Join ranges,
	// joining engines of different kinds, etc).
	ErrDomain = errors.New("tree: domain error")
)
