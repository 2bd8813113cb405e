package vec

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/vec/internal/alloc"
)

// rawBuf owns one block of cap element slots. It knows nothing about which
// slots hold live values; that is the owner's business. A rawBuf has exactly
// one owner: handing it on goes through moveOut, which leaves the source
// empty so the block can never be released twice.
//
// All address arithmetic on the block lives in this file.
type rawBuf[T any] struct {
	base   unsafe.Pointer // nil while cap == 0
	cap    int
	a      alloc.Allocator
	logger log.Logger
}

func newRawBuf[T any](a alloc.Allocator, logger log.Logger) rawBuf[T] {
	if elemSize[T]() == 0 {
		panic("vec: zero-sized element types are not supported")
	}
	return rawBuf[T]{a: a, logger: logger}
}

func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// layout returns the layout of n slots, panicking if it is not representable.
func (b *rawBuf[T]) layout(n int) alloc.Layout {
	l, err := alloc.LayoutFor[T](n)
	if err != nil {
		panic(&AllocError{Err: err})
	}
	return l
}

// grow doubles the capacity, starting from one slot.
func (b *rawBuf[T]) grow() {
	b.reserve(b.cap + 1)
}

// reserve doubles the capacity until at least need slots exist, then
// reallocates once.
func (b *rawBuf[T]) reserve(need int) {
	if need <= b.cap {
		return
	}
	if b.a == nil {
		// Zero value: heap memory, no logging.
		*b = newRawBuf[T](alloc.Heap[T]{}, log.NewNopLogger())
	}
	newCap := max(b.cap, 1)
	for newCap < need {
		if newCap > math.MaxInt/2 {
			panic(&AllocError{Err: errors.Wrapf(alloc.ErrTooLarge, "capacity overflow reserving %d slots", need)})
		}
		newCap *= 2
	}
	b.growTo(newCap)
}

func (b *rawBuf[T]) growTo(newCap int) {
	newLayout := b.layout(newCap)

	var (
		p   unsafe.Pointer
		err error
	)
	if b.cap == 0 {
		p, err = b.a.Alloc(newLayout)
	} else {
		p, err = b.a.Realloc(b.base, b.layout(b.cap), newLayout)
	}
	if err != nil {
		if b.cap != 0 && errors.Is(err, alloc.ErrMisaligned) {
			// The old block went with the failed realloc.
			b.base, b.cap = nil, 0
		}
		panic(&AllocError{Layout: newLayout, Err: err})
	}

	level.Debug(b.logger).Log("msg", "grew storage", "from", b.cap, "to", newCap, "bytes", newLayout.Size)
	b.base, b.cap = p, newCap
}

// release returns the block. It is a no-op on an empty buffer, which is also
// what release leaves behind.
func (b *rawBuf[T]) release() {
	if b.cap == 0 {
		return
	}
	l := b.layout(b.cap)
	base, capacity := b.base, b.cap
	b.base, b.cap = nil, 0

	if err := b.a.Free(base, l); err != nil {
		panic(&AllocError{Layout: l, Err: err})
	}
	if err := b.a.Close(); err != nil {
		panic(&AllocError{Layout: l, Err: err})
	}
	level.Debug(b.logger).Log("msg", "released storage", "cap", capacity, "bytes", l.Size)
}

// moveOut transfers the block to the returned rawBuf and empties b.
func (b *rawBuf[T]) moveOut() rawBuf[T] {
	moved := *b
	*b = rawBuf[T]{a: b.a, logger: b.logger}
	return moved
}

// slot returns the address of slot i, which must be in [0, cap).
func (b *rawBuf[T]) slot(i int) *T {
	if uint(i) >= uint(b.cap) {
		panic(fmt.Sprintf("vec: slot %d out of range [0:%d)", i, b.cap))
	}
	return (*T)(unsafe.Add(b.base, uintptr(i)*elemSize[T]()))
}

// slots returns slots [lo, hi) as a slice aliasing the block. It returns nil
// for an empty range.
func (b *rawBuf[T]) slots(lo, hi int) []T {
	if lo < 0 || hi < lo || hi > b.cap {
		panic(fmt.Sprintf("vec: slots [%d:%d] out of range [0:%d]", lo, hi, b.cap))
	}
	if lo == hi {
		return nil
	}
	return unsafe.Slice(b.slot(lo), hi-lo)
}

// read moves the value out of slot i and zeroes the slot.
func (b *rawBuf[T]) read(i int) T {
	var zero T
	p := b.slot(i)
	x := *p
	*p = zero
	return x
}

// shift moves n slots starting at src to dst. The ranges may overlap.
func (b *rawBuf[T]) shift(dst, src, n int) {
	if n == 0 {
		return
	}
	copy(b.slots(dst, dst+n), b.slots(src, src+n))
}
