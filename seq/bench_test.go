package seq_test

import (
	"testing"

	"github.com/katalvlaran/seqs/cursor"
	"github.com/katalvlaran/seqs/seq"
)

const benchN = 1 << 14

// BenchmarkFind_FullScan measures the worst case: an absent target forces a
// scan of the whole range.
func BenchmarkFind_FullScan(b *testing.B) {
	v := ascending(benchN)
	cb, ce := cursor.Span(v)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = seq.Find(cb, ce, -1)
	}
}

// BenchmarkBinarySearch_Hit probes a present value in a sorted range.
func BenchmarkBinarySearch_Hit(b *testing.B) {
	v := ascending(benchN)
	cb, ce := cursor.Span(v)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = seq.BinarySearch(cb, ce, i%benchN)
	}
}

// BenchmarkCopy_Preallocated copies into a destination of exactly the right
// size.
func BenchmarkCopy_Preallocated(b *testing.B) {
	src := ascending(benchN)
	dst := make([]int, benchN)
	cb, ce := cursor.Span(src)

	b.ReportAllocs()
	b.SetBytes(int64(benchN))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = seq.Copy[int](cb, ce, cursor.Begin(dst))
	}
}

// BenchmarkPartition_EvensFirst partitions the full range each iteration;
// after the first pass the input is already partitioned, which is still a
// complete two-cursor scan.
func BenchmarkPartition_EvensFirst(b *testing.B) {
	v := ascending(benchN)
	cb, ce := cursor.Span(v)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = seq.Partition(cb, ce, isEven)
	}
}

// BenchmarkReverse flips the range in place every iteration.
func BenchmarkReverse(b *testing.B) {
	v := ascending(benchN)
	cb, ce := cursor.Span(v)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		seq.Reverse[int](cb, ce)
	}
}

// BenchmarkAccumulate_Sum folds the whole range into an int.
func BenchmarkAccumulate_Sum(b *testing.B) {
	v := ascending(benchN)
	cb, ce := cursor.Span(v)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = seq.Accumulate(cb, ce, 0)
	}
}
