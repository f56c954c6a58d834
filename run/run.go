/*package run provides the execution policies used by whole-mesh operations.
Every operation is synchronous: it is either fully sequential or fully
parallel for its duration, selected at the call site.*/
package run

import (
	"runtime"
)

// Policy selects how a loop over particles or cells executes. Sequential
// execution exists primarily for debugging and determinism; Parallel is the
// production policy.
type Policy int

const (
	Sequential Policy = iota
	Parallel
)

// NumCores is the number of workers used by the Parallel policy.
var NumCores = runtime.NumCPU()

// For applies fn to every index in [0, n). Under the Parallel policy the
// index space is block partitioned across NumCores workers and For returns
// once every worker has finished. No ordering is guaranteed between
// indices, so results must not depend on scheduling order.
func For(pol Policy, n int, fn func(i int)) {
	workers := NumCores
	if workers > n {
		workers = n
	}

	if pol == Sequential || workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	out := make(chan int, workers)
	for id := 0; id < workers-1; id++ {
		go forChunk(id, workers, n, fn, out)
	}
	forChunk(workers-1, workers, n, fn, out)

	for i := 0; i < workers; i++ {
		<-out
	}
}

func forChunk(id, workers, n int, fn func(i int), out chan<- int) {
	low, high := id*n/workers, (id+1)*n/workers
	for i := low; i < high; i++ {
		fn(i)
	}
	out <- id
}

// ForIndexes applies fn to every index in idxs under the given policy.
func ForIndexes(pol Policy, idxs []int, fn func(i int)) {
	For(pol, len(idxs), func(i int) { fn(idxs[i]) })
}
