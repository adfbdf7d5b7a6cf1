package lite

import (
	"context"
	"sync"

	"github.com/go-logr/logr"

	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/core"
	"github.com/ib-77/result/pkg/result/mass"
)

const defaultLines = 1

func Run[T any](ctx context.Context, inputCh <-chan result.Result[T, error],
	engine mass.Engine[T, T], lines int) <-chan result.Result[T, error] {
	return Turnout(ctx, inputCh, engine, lines)
}

func Turnout[In, Out any](ctx context.Context, inputCh <-chan result.Result[In, error],
	engine mass.Engine[In, Out], lines int) <-chan result.Result[Out, error] {

	options := core.OptionsFrom(ctx)
	lines = options.Lines(lines, defaultLines)

	logr.FromContextOrDiscard(ctx).WithName("lite").V(1).Info("starting lines", "lines", lines)

	out := make(chan result.Result[Out, error])
	wg := &sync.WaitGroup{}
	handlers := cancellationHandlers[In, Out](options)

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func cancellationHandlers[In, Out any](options core.Options) core.CancellationHandlers[In, Out] {
	if !options.ProcessRemaining {
		return core.CancellationHandlers[In, Out]{}
	}
	return core.CancellationHandlers[In, Out]{
		OnCancel:            core.FailRemaining[In, Out],
		OnCancelUnprocessed: core.FailUnprocessed[In, Out],
		OnCancelProcessed:   core.PassProcessed[In, Out],
	}
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) mass.Engine[T, T] {
	return func(ctx context.Context, input result.Result[T, error]) <-chan result.Result[T, error] {
		return mass.Validating(ctx, input, validate, nil)
	}
}

func Switch[In, Out any](switchOnSuccess func(ctx context.Context, r In) result.Result[Out, error]) mass.Engine[In, Out] {
	return func(ctx context.Context, input result.Result[In, error]) <-chan result.Result[Out, error] {
		return mass.Switching(ctx, input, switchOnSuccess, nil)
	}
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) mass.Engine[In, Out] {
	return func(ctx context.Context, input result.Result[In, error]) <-chan result.Result[Out, error] {
		return mass.Mapping(ctx, input, mapOnSuccess, nil)
	}
}

func Tee[T any](sideEffect func(ctx context.Context, r result.Result[T, error])) mass.Engine[T, T] {
	return func(ctx context.Context, input result.Result[T, error]) <-chan result.Result[T, error] {
		return mass.Teeing(ctx, input, sideEffect, nil)
	}
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) mass.Engine[In, Out] {
	return func(ctx context.Context, input result.Result[In, error]) <-chan result.Result[Out, error] {
		return mass.Trying(ctx, input, onTryExecute, nil)
	}
}

func Finally[In, Out any](ctx context.Context, input <-chan result.Result[In, error],
	handlers mass.FinallyHandlers[In, Out]) <-chan Out {
	return mass.Finalizing(ctx, input, handlers, nil)
}
