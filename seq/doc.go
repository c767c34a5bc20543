// Package seq provides the classic begin/end sequence algorithms, generic
// over any cursor of the required capability tier (see package cursor).
//
// What
//
//   - Search:      Equal, Find, RFind, FindIf, Search, BinarySearch
//   - Copy/filter: Copy, RemoveCopy, RemoveCopyIf, Remove, RemoveIf
//   - Reorder:     Replace, Reverse, Partition
//   - Fold:        Accumulate, ForEach
//   - Leaf:        Swap, Min, Max
//
// Why
//
//   - One implementation per algorithm, reused across every element type and
//     every container that exposes cursors of the right tier.
//   - The weakest sufficient tier is part of each signature, so capability
//     mismatches are compile errors, not runtime faults.
//
// Contracts
//
//	Every function takes half-open ranges [b, e). Preconditions (valid
//	range, destination capacity, sorted input for BinarySearch, equal-length
//	second range for Equal) are the caller's responsibility and are not
//	checked at runtime; the algorithms are total over well-formed inputs and
//	never allocate, raise, or log. In-place removals and Partition return a
//	new logical boundary and leave the region beyond it unspecified but
//	valid — the caller's container keeps its length.
//
// Type arguments
//
//	The element type is always the first type parameter. Where it occurs in
//	an ordinary parameter (Find, Remove, Replace, the predicates' argument)
//	inference fills everything in; where it occurs only in cursor
//	constraints it must be given explicitly:
//
//	    seq.Equal[int](b1, e, b2)
//	    seq.Copy[int](b, e, d)
//	    seq.Reverse[int](b, e)
//	    seq.Search[int](b1, e1, b2, e2)
//
// Complexity
//
//	All algorithms are single-pass or converging two-cursor scans, O(n) in
//	the range length, except Search (O(n·m) worst case, naive scan) and
//	BinarySearch (O(log n)). None retains state between calls; concurrent
//	use over disjoint sequences is safe, over a shared sequence it is the
//	caller's to serialize.
package seq
