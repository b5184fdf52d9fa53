package kernel

import (
	"runtime"
	"sync"
)

var numWorkers = runtime.NumCPU()

// parallel splits the range [0,n) into one contiguous span per worker and
// runs fn on every span from its own goroutine, blocking until all spans
// are done. fn must only write to output regions derived from its span so
// that no synchronization is needed between workers.
func parallel(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}

	workers := numWorkers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	span := (n + workers - 1) / workers
	wg := sync.WaitGroup{}
	for lo := 0; lo < n; lo += span {
		hi := lo + span
		if hi > n {
			hi = n
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
