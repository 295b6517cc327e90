package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or a failure value of type E.
// Exactly one of the two is meaningful at a time.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       E
	isSuccess bool
}

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromError converts a Go (value, error) pair into a Result.
func FromError[T any](r T, err error) Result[T, error] {
	if !IsNil(err) {
		return Fail[T](err)
	}
	return Success[T, error](r)
}

// FailFrom carries the failure of from over to a Result of another success type,
// keeping its id and creation time.
func FailFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) Result() T {
	return r.result
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Get returns the success value, the failure value and whether r is a success.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.result, r.err, r.isSuccess
}

// Unwrap returns the success value or panics with ErrNoValue.
func (r Result[T, E]) Unwrap() T {
	if !r.isSuccess {
		panic(fmt.Errorf("%w: result is a failure: %v", ErrNoValue, r.err))
	}
	return r.result
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.isSuccess {
		return r.result
	}
	return fallback
}

// Ok drops the failure value.
func (r Result[T, E]) Ok() Option[T] {
	if r.isSuccess {
		return Some(r.result)
	}
	return None[T]()
}

// Failure drops the success value.
func (r Result[T, E]) Failure() Option[E] {
	if r.isSuccess {
		return None[E]()
	}
	return Some(r.err)
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Fail(%v)", r.err)
}

// ToError converts r back into a Go (value, error) pair.
func ToError[T any](r Result[T, error]) (T, error) {
	return r.result, r.err
}

func Map[In, Out, E any](r Result[In, E], f func(In) Out) Result[Out, E] {
	if r.isSuccess {
		return Success[Out, E](f(r.result))
	}
	return FailFrom[In, Out](r)
}

func MapErr[T, In, Out any](r Result[T, In], f func(In) Out) Result[T, Out] {
	if r.isSuccess {
		return Result[T, Out]{
			result:    r.result,
			isSuccess: true,
			createdAt: r.createdAt,
			id:        r.id,
		}
	}
	return Fail[T](f(r.err))
}

func FlatMap[In, Out, E any](r Result[In, E], f func(In) Result[Out, E]) Result[Out, E] {
	if r.isSuccess {
		return f(r.result)
	}
	return FailFrom[In, Out](r)
}
