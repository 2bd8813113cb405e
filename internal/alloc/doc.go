// Package alloc is the raw memory seam underneath the vec containers.
//
// An Allocator hands out blocks described by a Layout and is told the exact
// Layout again when the block is resized or returned. Two backends exist:
//
//   - Heap[T] carves blocks out of the Go heap as []T, so the garbage
//     collector sees every pointer stored in them.
//   - Manual obtains blocks from modernc.org/memory, outside the Go heap.
//     It only accepts element types that contain no Go pointers.
//
// Every backend reports into a process-wide set of counters (see Stats), which
// is how callers prove that no block outlives its owner.
package alloc
