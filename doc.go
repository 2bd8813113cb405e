// Package vec implements a growable, contiguously stored sequence on top of
// raw allocation rather than Go's built-in slices.
//
// # Overview
//
// A Vec owns a single block of element slots. The first Len() slots hold
// live elements; the rest are unused. When a Push or Insert finds the block
// full, the capacity doubles (0, 1, 2, 4, 8, ...) and the live elements are
// carried over to the new block. Capacity never shrinks.
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // Drops remaining elements, returns the storage
//
//	v.Push(1)
//	v.Push(2)
//	v.Insert(0, 0)       // [0 1 2]
//	x := v.Remove(1)     // x == 1, [0 2]
//	last, ok := v.Pop()  // last == 2, ok == true
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Consuming Iteration
//
// IntoIter turns a Vec into an iterator that moves elements out, from the
// front with Next and from the back with NextBack, in any interleaving. The
// Vec is unusable afterwards; the iterator owns the storage and returns it
// on Close:
//
//	it := v.IntoIter()
//	defer it.Close() // Drops whatever was not moved out
//
//	first, _ := it.Next()
//	last, _ := it.NextBack()
//
// # Dropping
//
// Elements implementing Dropper are told when the container discards them.
// Drop runs exactly once per discarded element, whether that happens through
// Release, Clear, Truncate, Set or an IntoIter closed before it was drained.
//
// # Memory
//
// By default slots live in a Go heap block typed as []T, so element types
// may contain pointers. WithManualMemory moves the block outside the Go heap
// (via modernc.org/memory) for pointer-free element types.
//
// # Failures
//
// An out-of-range index, or any use after Release or IntoIter, panics.
// Storage that cannot be obtained panics with *AllocError; there is no error
// return because growth is promised to every Push and Insert.
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//
//	prometheus.MustRegister(vec.NewCollector("myapp"))
package vec
