package seq

import "github.com/katalvlaran/seqs/cursor"

// Summable constrains Accumulate to types with a built-in +: every numeric
// kind plus string, so the same fold does sums and concatenations.
type Summable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 |
		~string
}

// Accumulate folds [b, e) into a by repeated addition, left to right, and
// returns the final value. The caller picks the seed: Accumulate(b, e, 0)
// is a sum, Accumulate(b, e, "") a concatenation. An empty range returns
// the seed unchanged.
//
// Complexity: O(n), Memory: O(1).
func Accumulate[T Summable, It cursor.Input[It, T]](b, e It, a T) T {
	for !b.Equal(e) {
		a += b.Value()
		b = b.Next()
	}

	return a
}

// ForEach applies f to every element of [b, e) in order, for its side
// effects, and returns f — handy when f is a closure carrying state the
// caller wants back.
//
// Complexity: O(n) applications, Memory: O(1).
func ForEach[T any, It cursor.Input[It, T]](b, e It, f func(T)) func(T) {
	for !b.Equal(e) {
		f(b.Value())
		b = b.Next()
	}

	return f
}
