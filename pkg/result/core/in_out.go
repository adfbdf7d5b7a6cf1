package core

import (
	"context"
	"sync"

	"github.com/go-logr/logr"

	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/solo"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)
	log := logr.FromContextOrDiscard(ctx).WithName("in")

	go func() {
		defer close(in)

		for i, v := range values {
			if ctx.Err() != nil {
				log.V(2).Info("context done before send", "sent", i, "total", len(values))
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				log.V(2).Info("context done while sending", "sent", i, "total", len(values))
				return
			}
		}
	}()

	return in
}

func ToChanFromArgsResults[T any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan result.Result[T, error] {
	in := make(chan result.Result[T, error])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- solo.Succeed(v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs[T](ctx, value)
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs[T](ctx, values...)
}

func ToChanManyResultsWithHandlers[T any](ctx context.Context, handlers ToChanHandlers[T], values []T) <-chan result.Result[T, error] {
	return ToChanFromArgsResults[T](ctx, handlers, values...)
}

func ToChanManyResults[T any](ctx context.Context, values []T) <-chan result.Result[T, error] {
	return ToChanFromArgsResults[T](ctx, ToChanHandlers[T]{}, values...)
}

// FromChanMany collects everything from out until it closes or ctx is done.
// With ProcessRemaining set in ctx it keeps reading after ctx is done, until
// out closes, so the stages feeding it can flush their remaining items.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	drain := OptionsFrom(ctx).ProcessRemaining
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		done := ctx.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-done:
				if !drain {
					return
				}
				// stop selecting on the closed done channel
				done = nil
			}
		}
	}()

	wg.Wait()
	return res
}
