// Package cursor defines the position-cursor abstraction that every
// algorithm in seq is generic over, plus the built-in cursors for Go slices.
//
// What
//
//   - Five capability tiers, each a constraint interface:
//   - Input: dereference (read), advance, position equality
//   - Output: dereference (write), advance
//   - Forward: Input + write, on the same cursor
//   - Bidirectional: Forward + retreat
//   - RandomAccess: Bidirectional + jump, distance, ordering
//   - Slice[T]: a RandomAccess cursor over a []T, built with Begin/End/Span.
//   - Appender[T]: an Output cursor that grows a slice on every write,
//     for destinations without pre-sized capacity.
//
// Why
//
//   - Algorithms state the weakest tier they need, and the compiler rejects
//     any cursor below it. Handing a write-only cursor to a search, or a
//     forward cursor to a binary search, is a type error.
//   - Cursors are plain values. Moving one returns a moved copy and never
//     touches the original, so algorithms may fan out as many positions over
//     one sequence as they like.
//
// Contract
//
//	A range is the half-open pair [begin, end) of cursors over the same
//	sequence, with end reachable from begin by repeated Next. The library
//	never validates this: mixing cursors from different sequences, or
//	dereferencing outside the range, is a caller bug and surfaces (for
//	Slice) as an index-out-of-range panic.
//
// Usage
//
//	v := []int{3, 1, 4, 1, 5}
//	b, e := cursor.Span(v)    // — same as cursor.Begin(v), cursor.End(v)
//	for !b.Equal(e) {
//	    fmt.Println(b.Value())
//	    b = b.Next()
//	}
package cursor
