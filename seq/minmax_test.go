package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/seqs/seq"
)

// TestMax picks the larger value across orderings and types.
func TestMax(t *testing.T) {
	assert.Equal(t, 10, seq.Max(5, 10))
	assert.Equal(t, 10, seq.Max(10, 5))
	assert.Equal(t, 100, seq.Max(100, 10))
	assert.Equal(t, "z", seq.Max("a", "z"))
	assert.Equal(t, 7, seq.Max(7, 7), "tie returns a value equal to both")
}

// TestMin picks the smaller value across orderings and types.
func TestMin(t *testing.T) {
	assert.Equal(t, 5, seq.Min(5, 10))
	assert.Equal(t, 5, seq.Min(10, 5))
	assert.Equal(t, 10, seq.Min(100, 10))
	assert.Equal(t, "a", seq.Min("a", "z"))
	assert.Equal(t, 7, seq.Min(7, 7))
}

// TestSwap exchanges two values through pointers, any type.
func TestSwap(t *testing.T) {
	x, y := 69, 420
	seq.Swap(&x, &y)
	assert.Equal(t, 420, x)
	assert.Equal(t, 69, y)

	u, v := "u", "v"
	seq.Swap(&u, &v)
	assert.Equal(t, "v", u)
	assert.Equal(t, "u", v)
}

// TestSwap_SelfAlias: swapping a value with itself leaves it unchanged.
func TestSwap_SelfAlias(t *testing.T) {
	x := 7
	seq.Swap(&x, &x)
	assert.Equal(t, 7, x)
}
