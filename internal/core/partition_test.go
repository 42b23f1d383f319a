package core

import (
	"slices"
	"sync/atomic"
	"testing"
)

func TestPartitionCoversEveryIndexOnce(t *testing.T) {
	for _, n := range []int{0, 1, 5, 8, 63, 64, 1000} {
		for _, workers := range []int{0, 1, 3, 7, 16} {
			cells := make([]int32, n)
			Partition(cells, workers, func(base int, chunk []int32) {
				for i := range chunk {
					atomic.AddInt32(&cells[base+i], 1)
				}
			})
			for i, v := range cells {
				if v != 1 {
					t.Fatalf("n=%d workers=%d: index %d visited %d times", n, workers, i, v)
				}
			}
		}
	}
}

func TestPartitionChunksAreContiguous(t *testing.T) {
	cells := make([]int, 100)
	var calls atomic.Int32
	Partition(cells, 3, func(base int, chunk []int) {
		calls.Add(1)
		for i := range chunk {
			chunk[i] = base + i
		}
	})
	if calls.Load() != 4 {
		t.Fatalf("expected 4 chunks, got %d", calls.Load())
	}
	want := make([]int, 100)
	for i := range want {
		want[i] = i
	}
	if !slices.Equal(cells, want) {
		t.Fatal("chunk base offsets do not line up with the slice")
	}
}

func TestPartitionChunkCapacityIsBounded(t *testing.T) {
	cells := make([]byte, 40)
	Partition(cells, 3, func(base int, chunk []byte) {
		if base+cap(chunk) > len(cells) {
			t.Errorf("chunk at %d can grow past the slice", base)
		}
		if base < 30 && cap(chunk) != 10 {
			t.Errorf("worker chunk at %d has cap %d, want 10", base, cap(chunk))
		}
	})
}
