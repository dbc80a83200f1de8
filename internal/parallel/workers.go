package parallel

import (
	"runtime"
)

// maxWorkers caps the pool so a large store does not exhaust file descriptors.
const maxWorkers = 32

// CalculateWorkers returns the number of workers for reading and scanning
// numItems files. It is never more than numItems and never less than one for
// a non-empty input.
func CalculateWorkers(numItems int) int {
	if numItems <= 0 {
		return 0
	}

	// workers mostly wait on the disk, so allow more than one per core
	workers := min(runtime.NumCPU()*2, maxWorkers, numItems)
	return max(workers, 1)
}
