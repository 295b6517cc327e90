package rop

import "fmt"

// Option holds either a present value of type T or nothing.
// The zero Option is absent.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPair converts a Go comma-ok pair into an Option.
func FromPair[T any](v T, ok bool) Option[T] {
	if ok {
		return Some(v)
	}
	return None[T]()
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the value or panics with ErrNoValue.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(fmt.Errorf("%w: option is none", ErrNoValue))
	}
	return o.value
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Option[T]) UnwrapOrElse(fallback func() T) T {
	if o.present {
		return o.value
	}
	return fallback()
}

// Or returns o when present, otherwise alternative.
func (o Option[T]) Or(alternative Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alternative
}

// Filter keeps the value only when keep reports true for it.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	if o.present && keep(o.value) {
		return o
	}
	return None[T]()
}

// OkOr turns o into a Result, using err as the failure when o is absent.
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if o.present {
		return Success[T, E](o.value)
	}
	return Fail[T](err)
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

func MapOption[In, Out any](o Option[In], f func(In) Out) Option[Out] {
	if o.present {
		return Some(f(o.value))
	}
	return None[Out]()
}

func FlatMapOption[In, Out any](o Option[In], f func(In) Option[Out]) Option[Out] {
	if o.present {
		return f(o.value)
	}
	return None[Out]()
}
