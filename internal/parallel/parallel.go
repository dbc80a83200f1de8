// Package parallel runs per-file checks across a bounded pool of workers.
package parallel

import (
	"sync"
)

// MatchFunc reports whether item should be kept.
type MatchFunc[T any] func(item T) (bool, error)

// Filter runs fn on every item using a worker pool and returns the items for
// which fn returned true, in their original order. If any call fails, Filter
// returns the error from the earliest failing item and no results.
func Filter[T any](items []T, fn MatchFunc[T]) ([]T, error) {
	if len(items) == 0 {
		return nil, nil
	}

	numWorkers := CalculateWorkers(len(items))

	type outcome struct {
		keep bool
		err  error
	}

	outcomes := make([]outcome, len(items))
	jobs := make(chan int, len(items))
	var wg sync.WaitGroup

	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				keep, err := fn(items[i])
				// each index is written by exactly one worker
				outcomes[i] = outcome{keep: keep, err: err}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var kept []T
	for i, o := range outcomes {
		if o.err != nil {
			return nil, o.err
		}
		if o.keep {
			kept = append(kept, items[i])
		}
	}
	return kept, nil
}
