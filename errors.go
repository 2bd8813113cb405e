package vec

import (
	"fmt"

	"github.com/pavanmanishd/vec/internal/alloc"
)

// Layout describes a block of storage: size in bytes and required alignment.
type Layout = alloc.Layout

var (
	// ErrTooLarge means the requested capacity does not fit in the address space.
	ErrTooLarge = alloc.ErrTooLarge
	// ErrOutOfMemory means the backing memory could not satisfy a request.
	ErrOutOfMemory = alloc.ErrOutOfMemory
	// ErrMisaligned means the backing memory returned a misaligned block.
	ErrMisaligned = alloc.ErrMisaligned
)

// AllocError is the value Vec panics with when storage cannot be obtained or
// returned. Growth is promised to every Push and Insert, so there is no error
// return to carry it; a recovered AllocError can be classified with errors.Is
// against ErrTooLarge, ErrOutOfMemory and ErrMisaligned.
type AllocError struct {
	Layout Layout
	Err    error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("vec: allocation of %d bytes (align %d) failed: %v", e.Layout.Size, e.Layout.Align, e.Err)
}

func (e *AllocError) Unwrap() error { return e.Err }

func outOfRange(op string, i, n int, inclusive bool) string {
	if inclusive {
		return fmt.Sprintf("vec: %s index %d out of range [0:%d]", op, i, n)
	}
	return fmt.Sprintf("vec: %s index %d out of range [0:%d)", op, i, n)
}
