package run

import (
	"sync/atomic"
	"testing"
)

func TestForSequentialOrder(t *testing.T) {
	visits := []int{}
	For(Sequential, 100, func(i int) {
		visits = append(visits, i)
	})

	if len(visits) != 100 {
		t.Fatalf("visited %d indices, expected 100", len(visits))
	}
	for i, v := range visits {
		if v != i {
			t.Fatalf("visit %d was index %d; sequential policy must "+
				"preserve order", i, v)
		}
	}
}

func TestForParallelCoverage(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100, 10001} {
		counts := make([]int32, n)
		For(Parallel, n, func(i int) {
			atomic.AddInt32(&counts[i], 1)
		})

		for i, c := range counts {
			if c != 1 {
				t.Errorf("n = %d: index %d visited %d times", n, i, c)
			}
		}
	}
}

func TestForWorkerCap(t *testing.T) {
	// More workers than indices must not panic or drop indices.
	old := NumCores
	defer func() { NumCores = old }()
	NumCores = 64

	counts := make([]int32, 3)
	For(Parallel, 3, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		if c != 1 {
			t.Errorf("index %d visited %d times", i, c)
		}
	}
}

func TestForIndexes(t *testing.T) {
	idxs := []int{3, 1, 4, 1, 5}
	got := []int{}
	ForIndexes(Sequential, idxs, func(i int) {
		got = append(got, i)
	})

	if len(got) != len(idxs) {
		t.Fatalf("visited %d indices, expected %d", len(got), len(idxs))
	}
	for i := range idxs {
		if got[i] != idxs[i] {
			t.Errorf("visit %d was %d, expected %d", i, got[i], idxs[i])
		}
	}
}
