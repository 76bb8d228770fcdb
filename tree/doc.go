// Package tree implements the ordered KeyedContainer contract over five
// interchangeable self-balancing/self-adjusting BST engines: AVLTree,
// RBTree (red-black), SplayTree, Treap, and RandomizedTree.
//
// Every engine shares: Search, Insert (rejects duplicates),
// InsertDup (duplicates allowed; every engine but SplayTree breaks ties
// to the right so in-order traversal visits ties in insertion order,
// while SplayTree places the new key right after the equal key it splays
// to the root, which does not keep insertion order), Remove, order-statistic
// Select/PositionOf, SplitByKey/SplitByPosition, Join/JoinExclusive, and
// the functional surface (Map/Filter/Fold/All/Exists/Partition/Zip/
// GroupBy) derived once in functional.go from the shared Iterator.
//
// Errors:
//
//	ErrNotFound    - declared but not returned: Search/Remove/PositionOf
//	                 report a miss with a false boolean.
//	ErrDuplicate   - Insert finds an equal key already present.
//	ErrOutOfRange  - Select/SplitByPosition index outside [0, n) / [0, n].
//	ErrDomain      - Join called with overlapping key ranges, or an engine
//	                 precondition is violated.
package tree
