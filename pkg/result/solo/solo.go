package solo

import (
	"context"
	"errors"

	"github.com/hashicorp/go-multierror"

	"github.com/ib-77/result/pkg/result"
)

func Succeed[T any](input T) result.Result[T, error] {
	return result.Success[T, error](input)
}

func Fail[T any](err error) result.Result[T, error] {
	return result.Failure[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) result.Result[T, error] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input result.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) result.Result[T, error] {

	return result.AndThen(input, func(in T) result.Result[T, error] {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return Fail[T](errors.New(errMsg))
		}
		return Succeed(in)
	})
}

// ValidateAll runs every validator against input and collects all failures
// into one multierror. With breakOnError it stops at the first failure.
func ValidateAll[T any](
	ctx context.Context,
	input result.Result[T, error],
	breakOnError bool, // exit on first error
	validators ...func(ctx context.Context, in result.Result[T, error]) result.Result[T, error]) result.Result[T, error] {

	var merr *multierror.Error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current result.Result[T, error]) result.Result[T, error] {

			if err, failed := current.FailureValue(); failed && err != error(merr) {
				for _, e := range result.Errors(err) {
					merr = multierror.Append(merr, e)
				}
			}

			if merr.ErrorOrNil() == nil {
				return current
			}

			return Fail[T](merr)
		},
		validators...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input result.Result[In, error],
	onSuccess func(ctx context.Context, r In) result.Result[Out, error]) result.Result[Out, error] {

	return result.AndThen(input, func(r In) result.Result[Out, error] {
		return onSuccess(ctx, r)
	})
}

func Map[In any, Out any](ctx context.Context,
	input result.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out) result.Result[Out, error] {

	return result.Map(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func Tee[T any](ctx context.Context,
	input result.Result[T, error],
	onSuccess func(ctx context.Context, r result.Result[T, error])) result.Result[T, error] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input result.Result[T, error],
	condition func(ctx context.Context, r result.Result[T, error]) bool,
	onSuccessAndCondition func(ctx context.Context, r result.Result[T, error])) result.Result[T, error] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input result.Result[T, error],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) result.Result[T, error] {

	if err, failed := input.FailureValue(); failed {
		onError(ctx, err)
	} else {
		onSuccess(ctx, input.Unwrap())
	}

	return input
}

// DoubleMap maps a success with onSuccess. A failure is reported to onError
// and then propagated unchanged.
func DoubleMap[In any, Out any](ctx context.Context, input result.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error)) result.Result[Out, error] {

	if err, failed := input.FailureValue(); failed {
		onError(ctx, err)
		return Fail[Out](err)
	}

	return Map(ctx, input, onSuccess)
}

// Try calls onTryExecute with the success payload and turns its error into a
// failure. Cancellation errors stay detectable with result.IsCancellation.
func Try[In any, Out any](ctx context.Context, input result.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) result.Result[Out, error] {

	return result.AndThen(input, func(r In) result.Result[Out, error] {
		out, err := onTryExecute(ctx, r)
		return result.FromPair(out, err)
	})
}

func FailOnError[T any](ctx context.Context, input result.Result[T, error],
	maybeErr func(ctx context.Context, in T) error) result.Result[T, error] {

	if v, ok := input.SuccessValue(); ok {
		if err := maybeErr(ctx, v); err != nil {
			return Fail[T](err)
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input result.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	return result.MapOrElse(input,
		func(err error) Out { return onError(ctx, err) },
		func(r In) Out { return onSuccess(ctx, r) })
}

func Join[T any](ctx context.Context,
	input result.Result[T, error],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current result.Result[T, error]) result.Result[T, error],
	inputsF ...func(ctx context.Context, in result.Result[T, error]) result.Result[T, error]) result.Result[T, error] {

	if len(inputsF) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if ctx.Err() != nil {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if ctx.Err() != nil {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
