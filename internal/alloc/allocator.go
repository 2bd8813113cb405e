package alloc

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
)

// Allocator hands out blocks for a single owner. Implementations are not safe
// for concurrent use.
type Allocator interface {
	// Alloc returns a block satisfying l. l.Size is never zero.
	Alloc(l Layout) (unsafe.Pointer, error)
	// Realloc returns a block satisfying newL whose first old.Size bytes equal
	// those of p. p is retired and must not be used again, even when the
	// returned pointer is the same address. On error p is still valid,
	// except after ErrMisaligned, when p counts as retired as well.
	Realloc(p unsafe.Pointer, old, newL Layout) (unsafe.Pointer, error)
	// Free returns p, which was obtained with layout l.
	Free(p unsafe.Pointer, l Layout) error
	// Close releases whatever the allocator itself holds. It is called once,
	// after the last Free.
	Close() error
}

// Kind selects an Allocator backend.
type Kind int

const (
	// KindHeap selects Heap.
	KindHeap Kind = iota
	// KindManual selects Manual.
	KindManual
)

func (k Kind) String() string {
	switch k {
	case KindHeap:
		return "heap"
	case KindManual:
		return "manual"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// New returns a fresh allocator of kind k for elements of type T.
func New[T any](k Kind) (Allocator, error) {
	switch k {
	case KindHeap:
		return Heap[T]{}, nil
	case KindManual:
		t := reflect.TypeFor[T]()
		if HasPointers(t) {
			return nil, errors.Wrapf(ErrHasPointers, "%v", t)
		}
		return &Manual{}, nil
	default:
		return nil, errors.Errorf("alloc: unknown allocator kind %v", k)
	}
}

// HasPointers reports whether values of t hold anything the garbage
// collector has to trace.
func HasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && HasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if HasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
