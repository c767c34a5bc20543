package seq

import (
	"cmp"

	"github.com/katalvlaran/seqs/cursor"
)

// Equal compares [b1, e) elementwise against the same-length range starting
// at b2, short-circuiting on the first mismatch. The second range must hold
// at least as many elements as the first; no second end cursor is taken, so
// reading past a shorter range is the caller's risk.
//
// Complexity: O(n), Memory: O(1).
func Equal[T comparable, It cursor.Input[It, T]](b1, e, b2 It) bool {
	for !b1.Equal(e) {
		if b1.Value() != b2.Value() {
			return false
		}
		b1, b2 = b1.Next(), b2.Next()
	}

	return true
}

// Find returns the first cursor in [b, e) whose element equals x, or e if
// there is none.
//
// Complexity: O(n), Memory: O(1).
func Find[T comparable, It cursor.Input[It, T]](b, e It, x T) It {
	for !b.Equal(e) && b.Value() != x {
		b = b.Next()
	}

	return b
}

// RFind is Find in its recursive formulation: same interface, same result,
// same scan order. Each unmatched position adds a stack frame, so the depth
// reached equals the distance to the match (or to e); prefer Find for long
// ranges.
func RFind[T comparable, It cursor.Input[It, T]](b, e It, x T) It {
	if b.Equal(e) || b.Value() == x {
		return b
	}

	return RFind(b.Next(), e, x)
}

// FindIf returns the first cursor in [b, e) whose element satisfies p, or e
// if there is none.
//
// Complexity: O(n), Memory: O(1).
func FindIf[T any, It cursor.Input[It, T]](b, e It, p func(T) bool) It {
	for !b.Equal(e) && !p(b.Value()) {
		b = b.Next()
	}

	return b
}

// Search finds the first occurrence of the needle [b2, e2) inside the
// haystack [b1, e1) and returns the cursor at its start. An empty needle
// matches immediately at b1; no match returns e1.
//
// The scan is the naive one: for each candidate start, both sequences are
// walked in lockstep until the needle is exhausted (match) or the haystack
// is exhausted (no match), restarting one past the candidate on mismatch.
//
// Complexity: O(n·m) worst case, Memory: O(1).
func Search[T comparable, It cursor.Input[It, T]](b1, e1, b2, e2 It) It {
	if b2.Equal(e2) {
		return b1
	}
	for !b1.Equal(e1) {
		it1, it2 := b1, b2
		for it1.Value() == it2.Value() {
			it1, it2 = it1.Next(), it2.Next()
			if it2.Equal(e2) {
				return b1
			}
			if it1.Equal(e1) {
				return e1
			}
		}
		b1 = b1.Next()
	}

	return e1
}

// BinarySearch reports whether x occurs in [b, e), which must be sorted
// non-decreasingly by <. An empty range yields false.
//
// The midpoint is computed as b + distance(b, e)/2 rather than from a sum
// of positions, so numeric cursor arithmetic cannot overflow. The loop
// invariant: if x is present at all, it lies within the current [b, e).
//
// Complexity: O(log n), Memory: O(1).
func BinarySearch[T cmp.Ordered, It cursor.RandomAccess[It, T]](b, e It, x T) bool {
	for b.Before(e) {
		mid := b.Advance(b.Distance(e) / 2)
		switch v := mid.Value(); {
		case x < v:
			e = mid
		case v < x:
			b = mid.Next()
		default:
			return true
		}
	}

	return false
}
