package vec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// tracked counts, per id, how many times it was dropped.
type tracked struct {
	id    int
	drops map[int]int
}

func (t tracked) Drop() { t.drops[t.id]++ }

// fragile is a tracked element whose Drop panics for the ids in panicOn,
// after counting the drop.
type fragile struct {
	id      int
	drops   map[int]int
	panicOn map[int]bool
}

func (f fragile) Drop() {
	f.drops[f.id]++
	if f.panicOn[f.id] {
		panic(fmt.Sprintf("drop %d failed", f.id))
	}
}

func fragileVec(n int, panicOn ...int) (*Vec[fragile], map[int]int) {
	drops := make(map[int]int)
	failing := make(map[int]bool)
	for _, id := range panicOn {
		failing[id] = true
	}
	v := New[fragile]()
	for i := 0; i < n; i++ {
		v.Push(fragile{id: i, drops: drops, panicOn: failing})
	}
	return v, drops
}

func trackedVec(n int) (*Vec[tracked], map[int]int) {
	drops := make(map[int]int)
	v := New[tracked]()
	for i := 0; i < n; i++ {
		v.Push(tracked{id: i, drops: drops})
	}
	return v, drops
}

func contents[T any](v *Vec[T]) []T {
	out := []T{}
	for x := range v.Values() {
		out = append(out, x)
	}
	return out
}

// requireAllocError runs fn and returns the *AllocError it panics with.
func requireAllocError(t *testing.T, fn func()) (err *AllocError) {
	t.Helper()
	defer func() {
		r := recover()
		var ok bool
		err, ok = r.(*AllocError)
		require.True(t, ok, "panic value = %#v, want *AllocError", r)
	}()
	fn()
	return nil
}

// requireNoLeak fails if fn leaves storage blocks or bytes behind.
func requireNoLeak(t *testing.T, fn func()) {
	t.Helper()
	before := Stats()
	fn()
	after := Stats()
	require.Equal(t, before.LiveBlocks, after.LiveBlocks, "live blocks")
	require.Equal(t, before.LiveBytes, after.LiveBytes, "live bytes")
}
