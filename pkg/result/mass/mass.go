package mass

import (
	"context"

	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/core"
	"github.com/ib-77/result/pkg/result/solo"
)

type Engine[In, Out any] func(ctx context.Context, input result.Result[In, error]) <-chan result.Result[Out, error]

// Lifting runs step on input in its own goroutine. The returned channel
// yields one result, or closes empty when ctx is already done; onCancel is
// called with input in that case.
func Lifting[In, Out any](ctx context.Context, input result.Result[In, error],
	step func(ctx context.Context, in result.Result[In, error]) result.Result[Out, error],
	onCancel func(ctx context.Context, in result.Result[In, error])) <-chan result.Result[Out, error] {

	out := make(chan result.Result[Out, error], 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			if onCancel != nil {
				onCancel(ctx, input)
			}
			return
		}
		out <- step(ctx, input)
	}()

	return out
}

func Validating[T any](ctx context.Context, input result.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string),
	onCancel func(ctx context.Context, in result.Result[T, error])) <-chan result.Result[T, error] {

	return Lifting(ctx, input, func(ctx context.Context, in result.Result[T, error]) result.Result[T, error] {
		return solo.AndValidate(ctx, in, validate)
	}, onCancel)
}

func Switching[In, Out any](ctx context.Context, input result.Result[In, error],
	switchOnSuccess func(ctx context.Context, r In) result.Result[Out, error],
	onCancel func(ctx context.Context, in result.Result[In, error])) <-chan result.Result[Out, error] {

	return Lifting(ctx, input, func(ctx context.Context, in result.Result[In, error]) result.Result[Out, error] {
		return solo.Switch(ctx, in, switchOnSuccess)
	}, onCancel)
}

func Mapping[In, Out any](ctx context.Context, input result.Result[In, error],
	mapOnSuccess func(ctx context.Context, r In) Out,
	onCancel func(ctx context.Context, in result.Result[In, error])) <-chan result.Result[Out, error] {

	return Lifting(ctx, input, func(ctx context.Context, in result.Result[In, error]) result.Result[Out, error] {
		return solo.Map(ctx, in, mapOnSuccess)
	}, onCancel)
}

func Teeing[T any](ctx context.Context, input result.Result[T, error],
	sideEffect func(ctx context.Context, r result.Result[T, error]),
	onCancel func(ctx context.Context, in result.Result[T, error])) <-chan result.Result[T, error] {

	return Lifting(ctx, input, func(ctx context.Context, in result.Result[T, error]) result.Result[T, error] {
		return solo.Tee(ctx, in, sideEffect)
	}, onCancel)
}

func Trying[In, Out any](ctx context.Context, input result.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onCancel func(ctx context.Context, in result.Result[In, error])) <-chan result.Result[Out, error] {

	return Lifting(ctx, input, func(ctx context.Context, in result.Result[In, error]) result.Result[Out, error] {
		return solo.Try(ctx, in, onTryExecute)
	}, onCancel)
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
}

// Finalizing collapses every result from inputCh into Out. It stops when
// inputCh closes or ctx is done. With ProcessRemaining set in ctx it keeps
// collapsing after ctx is done, until inputCh closes, so items emitted by
// canceled stages still reach the output.
func Finalizing[In, Out any](ctx context.Context, inputCh <-chan result.Result[In, error],
	handlers FinallyHandlers[In, Out],
	onSuccessResult func(ctx context.Context, out Out)) <-chan Out {

	out := make(chan Out)
	drain := core.OptionsFrom(ctx).ProcessRemaining

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				if drain {
					finalizeRemaining(ctx, inputCh, handlers, out)
				}
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError)

				select {
				case <-ctx.Done():
					if drain {
						out <- res
						finalizeRemaining(ctx, inputCh, handlers, out)
					}
					return
				case out <- res:
					if onSuccessResult != nil {
						onSuccessResult(ctx, res)
					}
				}
			}
		}
	}()

	return out
}

func finalizeRemaining[In, Out any](ctx context.Context, inputCh <-chan result.Result[In, error],
	handlers FinallyHandlers[In, Out], out chan<- Out) {
	for in := range inputCh {
		out <- solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError)
	}
}
