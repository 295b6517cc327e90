package trace

// Recorder keeps every value it observes, in order.
// It is not safe for concurrent use.
type Recorder[T any] struct {
	values []T
}

func (r *Recorder[T]) Observe(v T) {
	r.values = append(r.values, v)
}

// Values returns a copy of the recorded values.
func (r *Recorder[T]) Values() []T {
	out := make([]T, len(r.values))
	copy(out, r.values)
	return out
}

func (r *Recorder[T]) Count() int {
	return len(r.values)
}

func (r *Recorder[T]) Reset() {
	r.values = nil
}

// Counter counts observations and ignores the values.
type Counter struct {
	n int
}

func (c *Counter) Count() int {
	return c.n
}

// Observer adapts c to an observer of T.
func Observer[T any](c *Counter) func(T) {
	return func(T) {
		c.n++
	}
}
