package alloc

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// MaxSize is the largest block, in bytes, a backend is ever asked for.
const MaxSize = math.MaxInt

// Layout describes a block: its size in bytes and the alignment its address
// must satisfy.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// ArrayOf returns the layout of n consecutive elements of elemSize bytes
// aligned to elemAlign. It fails with ErrTooLarge when the byte size would
// exceed MaxSize.
func ArrayOf(elemSize, elemAlign uintptr, n int) (Layout, error) {
	if n < 0 {
		return Layout{}, errors.Wrapf(ErrTooLarge, "negative element count %d", n)
	}
	if elemSize != 0 && uintptr(n) > uintptr(MaxSize)/elemSize {
		return Layout{}, errors.Wrapf(ErrTooLarge, "%d elements of %d bytes", n, elemSize)
	}
	return Layout{Size: elemSize * uintptr(n), Align: elemAlign}, nil
}

// LayoutFor returns the layout of n elements of type T.
func LayoutFor[T any](n int) (Layout, error) {
	var zero T
	return ArrayOf(unsafe.Sizeof(zero), unsafe.Alignof(zero), n)
}

// isAligned reports whether p satisfies align, which must be a power of two.
func isAligned(p unsafe.Pointer, align uintptr) bool {
	if align == 0 {
		return true
	}
	return uintptr(p)&(align-1) == 0
}
