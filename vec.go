package vec

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/pavanmanishd/vec/internal/alloc"
)

type state uint8

const (
	live state = iota
	released
	moved
)

// Vec is a growable sequence stored contiguously in a single block.
// Slots [0, Len()) hold live elements; slots [Len(), Cap()) are unused.
//
// The zero value is an empty Vec backed by heap memory, as if made by New
// with no options.
//
// A Vec is not safe for concurrent use. It can be handed to another
// goroutine as long as only one goroutine uses it at a time.
type Vec[T any] struct {
	buf   rawBuf[T]
	len   int
	state state
}

// New creates an empty Vec. No memory is allocated until the first element
// is added. New panics if T has size zero, or if WithManualMemory is used
// with an element type that contains Go pointers.
func New[T any](opts ...Option) *Vec[T] {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	a, err := alloc.New[T](c.memory)
	if err != nil {
		panic("vec: " + err.Error())
	}
	return &Vec[T]{buf: newRawBuf[T](a, c.logger)}
}

// Of creates a Vec holding values in order.
func Of[T any](values ...T) *Vec[T] {
	v := New[T]()
	v.Reserve(len(values))
	for _, x := range values {
		v.Push(x)
	}
	return v
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.len
}

// Cap returns the number of slots currently allocated.
func (v *Vec[T]) Cap() int {
	return v.buf.cap
}

// Push appends x, doubling the capacity first if the Vec is full.
func (v *Vec[T]) Push(x T) {
	v.panicIfDead()
	if v.len == v.buf.cap {
		v.buf.grow()
	}
	*v.buf.slot(v.len) = x
	v.len++
}

// Pop removes the last element and returns it. It returns false if the Vec
// is empty.
func (v *Vec[T]) Pop() (T, bool) {
	v.panicIfDead()
	if v.len == 0 {
		var zero T
		return zero, false
	}
	v.len--
	return v.buf.read(v.len), true
}

// Insert places x at index i, shifting the elements at [i, Len()) one slot
// towards the end. i == Len() appends. It panics if i is outside [0, Len()].
func (v *Vec[T]) Insert(i int, x T) {
	v.panicIfDead()
	if i < 0 || i > v.len {
		panic(outOfRange("Insert", i, v.len, true))
	}
	if v.len == v.buf.cap {
		v.buf.grow()
	}
	v.buf.shift(i+1, i, v.len-i)
	*v.buf.slot(i) = x
	v.len++
}

// Remove takes out the element at index i and returns it, shifting the
// elements after it one slot towards the start. It panics if i is outside
// [0, Len()).
func (v *Vec[T]) Remove(i int) T {
	v.panicIfDead()
	if i < 0 || i >= v.len {
		panic(outOfRange("Remove", i, v.len, false))
	}
	x := *v.buf.slot(i)
	v.buf.shift(i, i+1, v.len-i-1)
	v.len--
	v.buf.read(v.len) // vacated
	return x
}

// Get returns the element at index i.
func (v *Vec[T]) Get(i int) T {
	return *v.at("Get", i)
}

// Set replaces the element at index i with x and drops the old value.
func (v *Vec[T]) Set(i int, x T) {
	p := v.at("Set", i)
	old := *p
	*p = x
	drop(old)
}

// At returns a pointer to the element at index i. The pointer is valid until
// the next call that changes the Vec's length or capacity.
func (v *Vec[T]) At(i int) *T {
	return v.at("At", i)
}

func (v *Vec[T]) at(op string, i int) *T {
	v.panicIfDead()
	if i < 0 || i >= v.len {
		panic(outOfRange(op, i, v.len, false))
	}
	return v.buf.slot(i)
}

// Slice returns the live elements as a slice aliasing the Vec's storage.
// Writes through it change the Vec. It is valid until the next call that
// changes the Vec's length or capacity, and is nil for an empty Vec.
func (v *Vec[T]) Slice() []T {
	v.panicIfDead()
	return v.buf.slots(0, v.len)
}

// All returns an iterator over index-value pairs in order. The elements stay
// in the Vec.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.panicIfDead()
		for i := 0; i < v.len; i++ {
			if !yield(i, *v.buf.slot(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from the last element
// to the first.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.panicIfDead()
		for i := v.len - 1; i >= 0; i-- {
			if !yield(i, *v.buf.slot(i)) {
				return
			}
		}
	}
}

// Reserve makes room for at least n more elements without further
// reallocation. Capacity still only ever doubles, so the result may exceed
// Len()+n.
func (v *Vec[T]) Reserve(n int) {
	v.panicIfDead()
	if n < 0 {
		panic("vec: Reserve count can't be < 0")
	}
	if n > alloc.MaxSize-v.len {
		l, _ := alloc.LayoutFor[T](1)
		panic(&AllocError{Layout: l, Err: errors.Wrapf(alloc.ErrTooLarge, "reserving %d more slots after %d", n, v.len)})
	}
	v.buf.reserve(v.len + n)
}

// Truncate drops the elements at [n, Len()). It does nothing if n >= Len().
func (v *Vec[T]) Truncate(n int) {
	v.panicIfDead()
	if n < 0 {
		panic("vec: Truncate length can't be < 0")
	}
	if n >= v.len {
		return
	}
	tail := v.buf.slots(n, v.len)
	v.len = n
	dropAll(tail)
}

// Clear drops every element. The capacity is kept for reuse.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Release drops every element and returns the storage. Any later use of the
// Vec panics. Releasing twice, or releasing a Vec already turned into an
// IntoIter, is safe.
func (v *Vec[T]) Release() {
	if v.state != live {
		return
	}
	elems := v.buf.slots(0, min(v.len, v.buf.cap))
	v.len = 0
	v.state = released
	defer v.buf.release()
	dropAll(elems)
}

// IntoIter turns the Vec into an iterator that moves its elements out.
// Ownership of the storage and of every element passes to the iterator; no
// element is copied or dropped. Any later use of the Vec panics.
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	v.panicIfDead()
	it := &IntoIter[T]{buf: v.buf.moveOut(), end: v.len}
	v.len = 0
	v.state = moved
	return it
}

func (v *Vec[T]) panicIfDead() {
	switch v.state {
	case released:
		panic("vec: use after Release()")
	case moved:
		panic("vec: use after IntoIter()")
	}
}
