package alloc

import "github.com/pkg/errors"

var (
	// ErrTooLarge is returned when a block's byte size overflows or exceeds MaxSize.
	ErrTooLarge = errors.New("alloc: allocation too large")
	// ErrOutOfMemory is returned when a backend cannot satisfy a request.
	ErrOutOfMemory = errors.New("alloc: out of memory")
	// ErrMisaligned is returned when a backend hands out a block that does not
	// satisfy the requested alignment.
	ErrMisaligned = errors.New("alloc: misaligned block")
	// ErrHasPointers is returned when an off-heap backend is asked to hold a
	// type the garbage collector would need to scan.
	ErrHasPointers = errors.New("alloc: element type contains Go pointers")
)
