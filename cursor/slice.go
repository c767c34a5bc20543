package cursor

// Slice is a random-access cursor over a Go slice. The zero value is a
// cursor over nil at position 0 — an empty range's begin and end at once.
//
// A Slice cursor is a view, not an owner: Set writes through to the slice it
// was built from, and copies of the cursor share that backing.
type Slice[T any] struct {
	data []T
	pos  int
}

// Begin returns a cursor at the first position of s.
func Begin[T any](s []T) Slice[T] {
	return Slice[T]{data: s}
}

// End returns the one-past-last cursor of s.
func End[T any](s []T) Slice[T] {
	return Slice[T]{data: s, pos: len(s)}
}

// Span returns Begin(s) and End(s) in one call.
func Span[T any](s []T) (Slice[T], Slice[T]) {
	return Begin(s), End(s)
}

// Equal reports whether c and other mark the same position. Meaningful only
// for cursors over the same slice.
func (c Slice[T]) Equal(other Slice[T]) bool { return c.pos == other.pos }

// Next returns the cursor advanced one position.
func (c Slice[T]) Next() Slice[T] {
	c.pos++

	return c
}

// Prev returns the cursor retreated one position.
func (c Slice[T]) Prev() Slice[T] {
	c.pos--

	return c
}

// Value reads the element under the cursor.
func (c Slice[T]) Value() T { return c.data[c.pos] }

// Set writes v to the element under the cursor.
func (c Slice[T]) Set(v T) { c.data[c.pos] = v }

// Advance returns the cursor moved n positions; n may be negative.
func (c Slice[T]) Advance(n int) Slice[T] {
	c.pos += n

	return c
}

// Distance returns the number of forward steps from c to `to`.
func (c Slice[T]) Distance(to Slice[T]) int { return to.pos - c.pos }

// Before reports whether c precedes other.
func (c Slice[T]) Before(other Slice[T]) bool { return c.pos < other.pos }

// Index returns the cursor's position as an index into the backing slice.
func (c Slice[T]) Index() int { return c.pos }

// Appender is a write-forward cursor that appends to a slice on every
// write — the cursor counterpart of append, for destinations whose final
// length is not known up front.
//
// Set appends and Next is a no-op, so the usual Set-then-Next discipline of
// the copy family advances exactly one element per write.
type Appender[T any] struct {
	dst *[]T
}

// AppendTo returns an Appender writing to *dst.
func AppendTo[T any](dst *[]T) Appender[T] {
	return Appender[T]{dst: dst}
}

// Set appends v to the destination slice.
func (a Appender[T]) Set(v T) { *a.dst = append(*a.dst, v) }

// Next returns the cursor unchanged; Set already advanced the destination.
func (a Appender[T]) Next() Appender[T] { return a }

// Tier conformance.
var (
	_ RandomAccess[Slice[int], int] = Slice[int]{}
	_ Output[Slice[int], int]       = Slice[int]{}
	_ Output[Appender[int], int]    = Appender[int]{}
)
