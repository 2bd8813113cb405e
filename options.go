package vec

import (
	"github.com/go-kit/log"

	"github.com/pavanmanishd/vec/internal/alloc"
)

// Option configures a Vec created by New.
type Option = func(*config)

type config struct {
	memory alloc.Kind
	logger log.Logger
}

func defaultConfig() config {
	return config{
		memory: alloc.KindHeap,
		logger: log.NewNopLogger(),
	}
}

// WithHeapMemory stores elements in a block on the Go heap. This is the
// default and works for every element type.
func WithHeapMemory() Option {
	return func(c *config) {
		c.memory = alloc.KindHeap
	}
}

// WithManualMemory stores elements outside the Go heap. The garbage collector
// never sees that memory, so New panics unless the element type is free of
// Go pointers (no strings, slices, maps, interfaces, channels, funcs or
// pointers). The memory goes back to the system only through Release or
// IntoIter.Close.
func WithManualMemory() Option {
	return func(c *config) {
		c.memory = alloc.KindManual
	}
}

// WithLogger sets the logger receiving debug events when storage grows or is
// released.
func WithLogger(logger log.Logger) Option {
	if logger == nil {
		panic("vec: logger can't be nil")
	}
	return func(c *config) {
		c.logger = logger
	}
}
