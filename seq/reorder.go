package seq

import "github.com/katalvlaran/seqs/cursor"

// Replace overwrites every element of [b, e) equal to x with y, in place.
//
// Complexity: O(n), Memory: O(1).
func Replace[T comparable, It cursor.Forward[It, T]](b, e It, x, y T) {
	for !b.Equal(e) {
		if b.Value() == x {
			b.Set(y)
		}
		b = b.Next()
	}
}

// Reverse reverses [b, e) in place by swapping converging ends. Empty and
// single-element ranges are no-ops; applying Reverse twice restores the
// original order.
//
// Complexity: O(n), Memory: O(1).
func Reverse[T any, It cursor.Bidirectional[It, T]](b, e It) {
	for !b.Equal(e) {
		e = e.Prev()
		if !b.Equal(e) {
			swapAt[T](b, e)
			b = b.Next()
		}
	}
}

// Partition rearranges [b, e) in place so every element satisfying p
// precedes every element that does not, and returns the cursor at the first
// element of the false group (e when all satisfy p). Relative order within
// each group is not preserved.
//
// Two cursors converge: b advances over p-true elements, e retreats over
// p-false elements, the blocking pair is swapped, and the scan resumes; the
// meeting point is returned the moment the cursors touch.
//
// Complexity: O(n) with at most n/2 swaps, Memory: O(1).
func Partition[T any, It cursor.Bidirectional[It, T]](b, e It, p func(T) bool) It {
	for !b.Equal(e) {
		for p(b.Value()) {
			b = b.Next()
			if b.Equal(e) {
				return b
			}
		}
		for {
			e = e.Prev()
			if b.Equal(e) {
				return b
			}
			if p(e.Value()) {
				break
			}
		}
		swapAt[T](b, e)
		b = b.Next()
	}

	return b
}

// swapAt exchanges the elements under two read-write cursors.
func swapAt[T any, It cursor.Forward[It, T]](x, y It) {
	t := x.Value()
	x.Set(y.Value())
	y.Set(t)
}
