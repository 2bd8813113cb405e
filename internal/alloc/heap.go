package alloc

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Heap allocates blocks of T from the Go heap. Blocks are typed as []T, so
// T may contain pointers. Free only drops the reference; the garbage
// collector reclaims the memory.
type Heap[T any] struct{}

// Alloc returns a fresh, zeroed block of T covering l.
func (Heap[T]) Alloc(l Layout) (unsafe.Pointer, error) {
	p, err := heapBlock[T](l)
	if err != nil {
		return nil, err
	}
	recordAlloc(l.Size)
	return p, nil
}

// Realloc copies the elements of p into a larger block. p is left for the
// garbage collector.
func (Heap[T]) Realloc(p unsafe.Pointer, old, newL Layout) (unsafe.Pointer, error) {
	if newL.Size < old.Size {
		return nil, errors.Errorf("alloc: heap realloc cannot shrink %d to %d bytes", old.Size, newL.Size)
	}
	np, err := heapBlock[T](newL)
	if errors.Is(err, ErrMisaligned) {
		recordFree(old.Size)
	}
	if err != nil {
		return nil, err
	}
	if n := elems[T](old); n > 0 {
		copy(unsafe.Slice((*T)(np), n), unsafe.Slice((*T)(p), n))
	}
	recordRealloc(old.Size, newL.Size)
	return np, nil
}

// Free records the release of p; the garbage collector reclaims it.
func (Heap[T]) Free(_ unsafe.Pointer, l Layout) error {
	recordFree(l.Size)
	return nil
}

// Close does nothing.
func (Heap[T]) Close() error { return nil }

// heapBlock makes a []T covering l. A length the runtime refuses to make is
// reported as ErrOutOfMemory instead of a runtime panic.
func heapBlock[T any](l Layout) (p unsafe.Pointer, err error) {
	var zero T
	if size := unsafe.Sizeof(zero); size == 0 || l.Size%size != 0 {
		return nil, errors.Errorf("alloc: %d bytes is not a whole number of %d-byte elements", l.Size, size)
	}
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, errors.Wrapf(ErrOutOfMemory, "heap: %d bytes: %v", l.Size, r)
		}
	}()
	s := make([]T, elems[T](l))
	p = unsafe.Pointer(unsafe.SliceData(s))
	if !isAligned(p, l.Align) {
		return nil, errors.Wrapf(ErrMisaligned, "heap: %p for align %d", p, l.Align)
	}
	return p, nil
}

func elems[T any](l Layout) int {
	var zero T
	return int(l.Size / unsafe.Sizeof(zero))
}
