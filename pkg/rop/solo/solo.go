package solo

import (
	"context"
	"errors"

	"github.com/ib-77/respector/pkg/rop"
)

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T, E any](err E) rop.Result[T, E] {
	return rop.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T, error] {
	return AndValidate(ctx, Succeed[T, error](input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T, error] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Result()); !isValid {
			return rop.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Switch[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

// Tee passes the success value to onSuccess and returns input unchanged.
func Tee[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T)) rop.Result[T, E] {

	if onSuccess == nil {
		return input
	}
	return input.Inspect(func(r T) {
		onSuccess(ctx, r)
	})
}

// TeeErr passes the failure value to onFailure and returns input unchanged.
func TeeErr[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onFailure func(ctx context.Context, err E)) rop.Result[T, E] {

	if onFailure == nil {
		return input
	}
	return input.InspectErr(func(err E) {
		onFailure(ctx, err)
	})
}

func TeeIf[T, E any](ctx context.Context,
	input rop.Result[T, E],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) rop.Result[T, E] {

	return input.Inspect(func(r T) {
		if condition(ctx, r) {
			onSuccessAndCondition(ctx, r)
		}
	})
}

func TeeOption[T any](ctx context.Context,
	input rop.Option[T],
	onSome func(ctx context.Context, v T)) rop.Option[T] {

	return input.Inspect(func(v T) {
		onSome(ctx, v)
	})
}

func DoubleTee[T, E any](ctx context.Context, input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err E)) rop.Result[T, E] {

	return TeeErr(ctx, Tee(ctx, input, onSuccess), onError)
}

func Try[In, Out any](ctx context.Context, input rop.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out, error] {

	if input.IsSuccess() {
		return rop.FromError(onTryExecute(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input rop.Result[T, error],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T, error] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Result()); err != nil {
			return rop.Fail[T](err)
		}
	}
	return input
}

func Finally[In, Out, E any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}
