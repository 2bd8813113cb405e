package vec

import "iter"

// IntoIter moves elements out of what used to be a Vec, from either end.
// It is created by Vec.IntoIter and owns the storage from then on.
//
// Slots [start, end) still hold live elements; everything outside that range
// has already been handed out. Close drops whatever is left and returns the
// storage, so an IntoIter must always be closed, whether or not it was
// drained.
type IntoIter[T any] struct {
	buf   rawBuf[T]
	start int
	end   int
}

// Next moves out the element at the front. It returns false when no
// elements remain.
func (it *IntoIter[T]) Next() (T, bool) {
	if it.start == it.end {
		var zero T
		return zero, false
	}
	x := it.buf.read(it.start)
	it.start++
	return x, true
}

// NextBack moves out the element at the back. It returns false when no
// elements remain.
func (it *IntoIter[T]) NextBack() (T, bool) {
	if it.start == it.end {
		var zero T
		return zero, false
	}
	it.end--
	return it.buf.read(it.end), true
}

// Len returns the number of elements not yet moved out.
func (it *IntoIter[T]) Len() int {
	return it.end - it.start
}

// All returns an iterator that moves elements out from the front. Breaking
// out of the loop leaves the rest in place for later calls or Close.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Backward is like All but moves elements out from the back.
func (it *IntoIter[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := it.NextBack()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Close drops the elements not yet moved out and returns the storage.
// Closing twice is safe; a closed IntoIter yields nothing.
func (it *IntoIter[T]) Close() {
	defer it.buf.release()
	if it.start != it.end {
		rest := it.buf.slots(it.start, it.end)
		it.start = it.end
		dropAll(rest)
	}
}
