// Package seqs is a small toolkit of generic sequence algorithms operating
// over abstract position cursors — searching, copying, filtering,
// partitioning, reversing, reducing, and order statistics, each parameterized
// over the element type and, where relevant, a caller-supplied predicate or
// seed.
//
// 🚀 What is seqs?
//
//	A modern, dependency-free library in the classic begin/end style:
//		• Cursor tiers: read-forward, write-forward, read-write, reversible, random-access
//		• Search: Equal, Find, RFind, FindIf, Search, BinarySearch
//		• Copy & filter: Copy, RemoveCopy, RemoveCopyIf, Remove, RemoveIf
//		• Reorder: Replace, Reverse, Partition
//		• Fold: Accumulate, ForEach
//		• Leaf utilities: Swap, Min, Max
//
// ✨ Why choose seqs?
//
//   - Compile-time capability checking — a forward-only cursor handed to
//     BinarySearch is a type error, not a runtime surprise
//   - Value-semantic cursors — positions copy freely, algorithms never alias
//   - Pure Go — no cgo, no hidden deps
//   - Zero allocation on every in-place algorithm
//
// Everything is organized under two subpackages:
//
//	cursor/ — the five cursor capability tiers plus the built-in Slice and
//	          Appender cursors
//	seq/    — the algorithms themselves, generic over any cursor of the
//	          required tier
//
// Quick example:
//
//	v := []int{4, 1, 8, 1, 3}
//	it := seq.Find(cursor.Begin(v), cursor.End(v), 8) // cursor at index 2
//	end := seq.Remove(cursor.Begin(v), cursor.End(v), 1)
//	kept := v[:cursor.Begin(v).Distance(end)]         // [4 8 3]
//
// Dive into the cursor and seq package docs for the full operation table and
// the cursor contract.
//
//	go get github.com/katalvlaran/seqs
package seqs
