package seq_test

// Shared fixtures: the tests lean on a handful of small integer sequences —
// an ascending run, its descending mirror, and the odd/even subsets.

// ascending returns [0, 1, ..., n-1].
func ascending(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}

// descending returns [n, n-1, ..., 1].
func descending(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = n - i
	}

	return s
}

func isEven(x int) bool { return x%2 == 0 }

func isOdd(x int) bool { return x%2 != 0 }
