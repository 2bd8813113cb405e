package alloc

import (
	"unsafe"

	"github.com/pkg/errors"
	"modernc.org/memory"
)

// Manual allocates blocks outside the Go heap through modernc.org/memory.
// The garbage collector does not scan these blocks, so they must only hold
// pointer-free values; New enforces that.
type Manual struct {
	a memory.Allocator
}

// Alloc returns an off-heap block satisfying l.
func (m *Manual) Alloc(l Layout) (unsafe.Pointer, error) {
	b, err := m.a.Malloc(int(l.Size))
	if err != nil {
		return nil, errors.Wrapf(ErrOutOfMemory, "manual: malloc %d bytes: %v", l.Size, err)
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if !isAligned(p, l.Align) {
		return nil, misaligned(m.a.Free(b), p, l.Align)
	}
	recordAlloc(l.Size)
	return p, nil
}

// Realloc resizes p in place or moves it, keeping its first old.Size bytes.
// On ErrMisaligned both the old and the new block are gone.
func (m *Manual) Realloc(p unsafe.Pointer, old, newL Layout) (unsafe.Pointer, error) {
	b, err := m.a.Realloc(unsafe.Slice((*byte)(p), old.Size), int(newL.Size))
	if err != nil {
		return nil, errors.Wrapf(ErrOutOfMemory, "manual: realloc %d to %d bytes: %v", old.Size, newL.Size, err)
	}
	np := unsafe.Pointer(unsafe.SliceData(b))
	if !isAligned(np, newL.Align) {
		// The old block was retired by the realloc.
		recordFree(old.Size)
		return nil, misaligned(m.a.Free(b), np, newL.Align)
	}
	recordRealloc(old.Size, newL.Size)
	return np, nil
}

// Free returns p, which was obtained with layout l, to the allocator.
func (m *Manual) Free(p unsafe.Pointer, l Layout) error {
	if err := m.a.Free(unsafe.Slice((*byte)(p), l.Size)); err != nil {
		return errors.Wrap(err, "manual: free")
	}
	recordFree(l.Size)
	return nil
}

// Close unmaps every page the allocator still holds.
func (m *Manual) Close() error {
	return errors.Wrap(m.a.Close(), "manual: close")
}

// misaligned builds the ErrMisaligned error for a block that was handed
// straight back, folding in any failure to free it.
func misaligned(freeErr error, p unsafe.Pointer, align uintptr) error {
	err := errors.Wrapf(ErrMisaligned, "manual: %p for align %d", p, align)
	if freeErr != nil {
		err = errors.Wrapf(err, "free: %v", freeErr)
	}
	return err
}
