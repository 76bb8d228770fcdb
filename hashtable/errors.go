package hashtable

import "errors"

var (
	// ErrNotFound denotes a lookup miss on a key. The maps in this
	// package do not return it: Search and Remove report a miss with a
	// false boolean.
	ErrNotFound = errors.New("hashtable: not found")
	// ErrDuplicate is returned by Insert when the key is already present.
	ErrDuplicate = errors.New("hashtable: duplicate key")
	// ErrCapacityExhausted is returned when an open-addressed table is
	// full and cannot grow.
	ErrCapacityExhausted = errors.New("hashtable: capacity exhausted")
)
