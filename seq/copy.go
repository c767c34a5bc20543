package seq

import "github.com/katalvlaran/seqs/cursor"

// Copy writes every element of [b, e) to successive destination positions
// in order and returns the destination cursor one past the last write. The
// destination must have capacity for distance(b, e) writes (an Appender
// always does).
//
// Complexity: O(n), Memory: O(1).
func Copy[T any, In cursor.Input[In, T], Out cursor.Output[Out, T]](b, e In, d Out) Out {
	for !b.Equal(e) {
		d.Set(b.Value())
		d, b = d.Next(), b.Next()
	}

	return d
}

// RemoveCopy copies every element of [b, e) not equal to x to the
// destination, preserving relative order, and returns the destination
// cursor one past the last write. The source is left untouched.
//
// Complexity: O(n), Memory: O(1).
func RemoveCopy[T comparable, In cursor.Input[In, T], Out cursor.Output[Out, T]](b, e In, d Out, x T) Out {
	for !b.Equal(e) {
		if v := b.Value(); v != x {
			d.Set(v)
			d = d.Next()
		}
		b = b.Next()
	}

	return d
}

// RemoveCopyIf copies every element of [b, e) for which p is false to the
// destination, preserving relative order, and returns the destination
// cursor one past the last write. The source is left untouched.
//
// Complexity: O(n), Memory: O(1).
func RemoveCopyIf[T any, In cursor.Input[In, T], Out cursor.Output[Out, T]](b, e In, d Out, p func(T) bool) Out {
	for !b.Equal(e) {
		if v := b.Value(); !p(v) {
			d.Set(v)
			d = d.Next()
		}
		b = b.Next()
	}

	return d
}

// Remove compacts [b, e) in place so the elements not equal to x occupy the
// front in their original order, and returns the new logical end. Elements
// from the returned cursor to e are unspecified but valid; the underlying
// container keeps its length.
//
// Complexity: O(n), Memory: O(1).
func Remove[T comparable, It cursor.Forward[It, T]](b, e It, x T) It {
	ret := b
	for !b.Equal(e) {
		if v := b.Value(); v != x {
			if !ret.Equal(b) {
				ret.Set(v)
			}
			ret = ret.Next()
		}
		b = b.Next()
	}

	return ret
}

// RemoveIf compacts [b, e) in place so the elements for which p is false
// occupy the front in their original order, and returns the new logical
// end. Elements from the returned cursor to e are unspecified but valid.
//
// Complexity: O(n), Memory: O(1).
func RemoveIf[T any, It cursor.Forward[It, T]](b, e It, p func(T) bool) It {
	ret := b
	for !b.Equal(e) {
		if v := b.Value(); !p(v) {
			if !ret.Equal(b) {
				ret.Set(v)
			}
			ret = ret.Next()
		}
		b = b.Next()
	}

	return ret
}
