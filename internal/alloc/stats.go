package alloc

import "sync/atomic"

// Statistics contains process-wide counters maintained by every backend.
type Statistics struct {
	Allocs     int64 // Blocks handed out by Alloc
	Reallocs   int64 // Successful Realloc calls
	Frees      int64 // Blocks returned by Free
	LiveBlocks int64 // Blocks currently outstanding
	LiveBytes  int64 // Bytes currently outstanding
}

var counters struct {
	allocs     atomic.Int64
	reallocs   atomic.Int64
	frees      atomic.Int64
	liveBlocks atomic.Int64
	liveBytes  atomic.Int64
}

// Stats returns a snapshot of the allocation counters.
func Stats() Statistics {
	return Statistics{
		Allocs:     counters.allocs.Load(),
		Reallocs:   counters.reallocs.Load(),
		Frees:      counters.frees.Load(),
		LiveBlocks: counters.liveBlocks.Load(),
		LiveBytes:  counters.liveBytes.Load(),
	}
}

func recordAlloc(size uintptr) {
	counters.allocs.Add(1)
	counters.liveBlocks.Add(1)
	counters.liveBytes.Add(int64(size))
}

func recordRealloc(oldSize, newSize uintptr) {
	counters.reallocs.Add(1)
	counters.liveBytes.Add(int64(newSize) - int64(oldSize))
}

func recordFree(size uintptr) {
	counters.frees.Add(1)
	counters.liveBlocks.Add(-1)
	counters.liveBytes.Add(-int64(size))
}
