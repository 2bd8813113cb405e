package vec_test

import (
	"fmt"
	"math/rand"
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/pavanmanishd/vec"
)

// counted drops through a pointer receiver.
type counted struct {
	id    int
	drops *[16]int
}

func (c *counted) Drop() { c.drops[c.id]++ }

// TestEdgeCases covers element types and layouts beyond plain ints.
func TestEdgeCases(t *testing.T) {
	t.Run("OddSizedElements", func(t *testing.T) {
		type odd struct {
			a int8
			b int64
			c int8
		}
		v := vec.New[odd]()
		defer v.Release()

		for i := 0; i < 33; i++ {
			v.Push(odd{int8(i), int64(i) * 1000, int8(-i)})
		}
		for i, x := range v.All() {
			require.Equal(t, odd{int8(i), int64(i) * 1000, int8(-i)}, x)
			addr := uintptr(unsafe.Pointer(v.At(i)))
			require.Zero(t, addr%unsafe.Alignof(odd{}), "element %d misaligned", i)
		}
	})

	t.Run("LargeElements", func(t *testing.T) {
		v := vec.New[[512]byte]()
		defer v.Release()

		for i := 0; i < 100; i++ {
			var block [512]byte
			for j := range block {
				block[j] = byte(i)
			}
			v.Push(block)
		}
		for i, block := range v.All() {
			for j, b := range block {
				if b != byte(i) {
					t.Fatalf("corruption at element %d byte %d: got %d, want %d", i, j, b, byte(i))
				}
			}
		}
	})

	t.Run("InterfaceElements", func(t *testing.T) {
		v := vec.New[any]()
		defer v.Release()

		v.Push(1)
		v.Push("two")
		v.Push(nil)
		v.Insert(1, 1.5)
		require.Equal(t, []any{1, 1.5, "two", nil}, v.Slice())
	})

	t.Run("PointerReceiverDropper", func(t *testing.T) {
		var drops [16]int
		v := vec.New[*counted]()
		for i := 0; i < 4; i++ {
			v.Push(&counted{id: i, drops: &drops})
		}
		v.Set(0, &counted{id: 10, drops: &drops})
		it := v.IntoIter()
		it.NextBack()
		it.Close()
		require.Equal(t, [16]int{0: 1, 1: 1, 2: 1, 10: 1}, drops)
	})

	t.Run("ZeroSizedElements", func(t *testing.T) {
		require.PanicsWithValue(t, "vec: zero-sized element types are not supported", func() {
			vec.New[struct{}]()
		})
	})
}

// TestRandomOperations checks a Vec against a builtin slice under a random
// mix of operations.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	v := vec.New[int](vec.WithManualMemory())
	defer v.Release()
	var model []int

	for step := 0; step < 5000; step++ {
		switch op := rng.Intn(4); {
		case op == 0 || len(model) == 0:
			x := rng.Int()
			v.Push(x)
			model = append(model, x)
		case op == 1:
			i, x := rng.Intn(len(model)+1), rng.Int()
			v.Insert(i, x)
			model = append(model[:i], append([]int{x}, model[i:]...)...)
		case op == 2:
			i := rng.Intn(len(model))
			require.Equal(t, model[i], v.Remove(i))
			model = append(model[:i], model[i+1:]...)
		default:
			x, ok := v.Pop()
			require.True(t, ok)
			require.Equal(t, model[len(model)-1], x)
			model = model[:len(model)-1]
		}
		require.Equal(t, len(model), v.Len())
	}
	for i, x := range model {
		require.Equal(t, x, v.Get(i))
	}
}

// TestHandOff moves Vecs and iterators between goroutines. Each value is
// only ever used by one goroutine at a time.
func TestHandOff(t *testing.T) {
	const workers = 8
	vecs := make(chan *vec.Vec[int])
	iters := make(chan *vec.IntoIter[int])
	sums := make(chan int, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			v := vec.New[int]()
			for i := 1; i <= 100; i++ {
				v.Push(i * w)
			}
			vecs <- v
			return nil
		})
		g.Go(func() error {
			v := <-vecs
			iters <- v.IntoIter()
			return nil
		})
		g.Go(func() error {
			it := <-iters
			defer it.Close()
			sum := 0
			for x := range it.All() {
				sum += x
			}
			if it.Len() != 0 {
				return fmt.Errorf("iterator not drained: %d left", it.Len())
			}
			sums <- sum
			runtime.Gosched()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(sums)

	total := 0
	for s := range sums {
		total += s
	}
	// Sum over w of w * (1 + ... + 100).
	require.Equal(t, 5050*(workers*(workers-1)/2), total)
}
