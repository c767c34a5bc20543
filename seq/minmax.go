package seq

import "cmp"

// Swap exchanges the values behind x and y through a temporary. Safe when
// both point at the same storage: the value passes through the temporary
// and lands back unchanged.
func Swap[T any](x, y *T) {
	t := *x
	*x = *y
	*y = t
}

// Max returns the larger of x and y. The test is x > y, so on equality the
// second argument is returned.
func Max[T cmp.Ordered](x, y T) T {
	if x > y {
		return x
	}

	return y
}

// Min returns the smaller of x and y. The test is x < y, so on equality the
// second argument is returned — the same tie-break as Max, not its mirror.
func Min[T cmp.Ordered](x, y T) T {
	if x < y {
		return x
	}

	return y
}
