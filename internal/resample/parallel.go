package resample

import (
	"sync"
	"sync/atomic"
)

// runRows executes rowFn(y) for y in [0,rows) across up to maxParallelism
// goroutines, each claiming the next unclaimed row off a shared counter.
// maxParallelism <= 1 runs sequentially on the calling goroutine.
func runRows(rows, maxParallelism int, rowFn func(y int)) {
	if rows <= 0 {
		return
	}
	if maxParallelism <= 1 || rows == 1 {
		for y := 0; y < rows; y++ {
			rowFn(y)
		}
		return
	}

	workers := maxParallelism
	if workers > rows {
		workers = rows
	}

	var next atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				y := int(next.Add(1)) - 1
				if y >= rows {
					return
				}
				rowFn(y)
			}
		}()
	}
	wg.Wait()
}
