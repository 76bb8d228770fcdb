package order

import "cmp"

// Natural returns the Less relation induced by a type's built-in '<'
// operator, for any type accepted by the standard library's cmp.Ordered
// constraint (integers, floats, strings).
func Natural[T cmp.Ordered]() Less[T] {
	return func(a, b T) bool { return a < b }
}
