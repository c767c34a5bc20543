package cursor

// The five tiers form a ladder: every tier below RandomAccess is satisfied
// by any cursor satisfying a higher one (Output joins at Forward). Each is a
// self-referential constraint — It is the cursor's own concrete type — so
// moves return values of that exact type and positions copy with plain
// assignment.

// Input is the read-forward tier: sequential read-only access.
//
// Equal reports whether two cursors mark the same position of the same
// sequence. Next returns the cursor moved one position forward. Value reads
// the element at the current position; it must not be called on a range's
// end cursor.
type Input[It, T any] interface {
	Equal(other It) bool
	Next() It
	Value() T
}

// Output is the write-forward tier: sequential write-only access.
//
// Set writes the element at the current position. Implementations that
// manage their own growth (Appender) may make Next a no-op and do the
// advancing inside Set; algorithms always call Set then Next, exactly once
// each per position.
type Output[It, T any] interface {
	Next() It
	Set(v T)
}

// Forward is the read-write-forward tier: Input plus writing through the
// same cursor. The minimum for in-place algorithms such as Replace and
// Remove.
type Forward[It, T any] interface {
	Input[It, T]
	Set(v T)
}

// Bidirectional is the reversible tier: Forward plus retreat. Required by
// the converging-ends algorithms Reverse and Partition.
//
// Prev returns the cursor moved one position backward; it must not be
// called on a range's begin cursor.
type Bidirectional[It, T any] interface {
	Forward[It, T]
	Prev() It
}

// RandomAccess is the top tier: Bidirectional plus position arithmetic.
// Required by BinarySearch.
//
// Advance returns the cursor moved n positions (n may be negative).
// Distance returns the number of forward steps from the receiver to `to`;
// negative when `to` precedes the receiver. Before reports strict positional
// order.
type RandomAccess[It, T any] interface {
	Bidirectional[It, T]
	Advance(n int) It
	Distance(to It) int
	Before(other It) bool
}
