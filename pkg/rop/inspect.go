package rop

// Inspect calls observe with the value when o is present and returns o unchanged.
// observe is never called for an absent Option. A nil observe is ignored.
//
//	rop.Some(10).Inspect(func(v int) { fmt.Println("Some", v) }) // prints "Some 10", returns Some(10)
//	rop.None[int]().Inspect(func(v int) { fmt.Println("Some", v) }) // prints nothing, returns None
func (o Option[T]) Inspect(observe func(T)) Option[T] {
	if o.present && observe != nil {
		observe(o.value)
	}
	return o
}

// Inspect calls observe with the success value when r is a success and returns r unchanged.
// Failures pass through without calling observe.
func (r Result[T, E]) Inspect(observe func(T)) Result[T, E] {
	if r.isSuccess && observe != nil {
		observe(r.result)
	}
	return r
}

// InspectErr calls observe with the failure value when r is a failure and returns r unchanged.
// Successes pass through without calling observe.
func (r Result[T, E]) InspectErr(observe func(E)) Result[T, E] {
	if !r.isSuccess && observe != nil {
		observe(r.err)
	}
	return r
}

func InspectOption[T any](o Option[T], observe func(T)) Option[T] {
	return o.Inspect(observe)
}

func Inspect[T, E any](r Result[T, E], observe func(T)) Result[T, E] {
	return r.Inspect(observe)
}

func InspectErr[T, E any](r Result[T, E], observe func(E)) Result[T, E] {
	return r.InspectErr(observe)
}

// InspectPair is Inspect for a comma-ok pair.
func InspectPair[T any](v T, ok bool, observe func(T)) (T, bool) {
	if ok && observe != nil {
		observe(v)
	}
	return v, ok
}

// InspectValue is Inspect for a (value, error) pair: observe sees v only when err is nil.
func InspectValue[T any](v T, err error, observe func(T)) (T, error) {
	if IsNil(err) && observe != nil {
		observe(v)
	}
	return v, err
}

// InspectError is InspectErr for a (value, error) pair: observe sees err only when it is not nil.
func InspectError[T any](v T, err error, observe func(error)) (T, error) {
	if !IsNil(err) && observe != nil {
		observe(err)
	}
	return v, err
}
