package chain

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/solo"
)

// Chain wraps a result.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	id  uuid.UUID
	res result.Result[T, error]
}

// Start creates a new chain from a result.Result
func Start[T any](ctx context.Context, r result.Result[T, error]) Chain[T] {
	c := Chain[T]{ctx: ctx, id: uuid.New(), res: r}
	c.logger().V(1).Info("chain started", "result", r.String())
	return c
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, solo.Succeed(v))
}

func (c Chain[T]) Result() result.Result[T, error] {
	return c.res
}

// ID correlates the log lines of one chain.
func (c Chain[T]) ID() uuid.UUID {
	return c.id
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// Then chains a function that returns result.Result[U, error]
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) result.Result[U, error]) Chain[U] {
	return next(c, "then", solo.Switch(c.ctx, c.res, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return next(c, "then_try", solo.Try(c.ctx, c.res, tryOnSuccess))
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return next(c, "map", solo.Map(c.ctx, c.res, onSuccess))
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}

// Then composes functions that already return result.Result[T, error]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) result.Result[T, error]) Chain[T] {
	return Then(c, onSuccess)
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return ThenTry(c, try)
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Map(c, onSuccess)
}

// Ensure triggers side effects for success/failure without changing the result.
// Either handler may be nil.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if err, failed := c.res.FailureValue(); failed {
		if onFailure != nil {
			onFailure(c.ctx, err)
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Unwrap())
	}
	return c
}

// RepeatUntil runs onSuccess at least once and keeps repeating it while until
// holds and the chain stays successful.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) result.Result[T, error],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Unwrap()) {
			return c
		}
	}
}

// While runs onSuccess as long as while holds and the chain stays successful.
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) result.Result[T, error],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Unwrap()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain among c and alternatives, otherwise
// the first failure.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required, otherwise the
// last one.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(onSuccess func(context.Context, T) T, onFailure func(context.Context, error) T) T {
	return Finally(c, onSuccess, onFailure)
}

func (c Chain[T]) logger() logr.Logger {
	return logr.FromContextOrDiscard(c.ctx).WithName("chain").WithValues("chain", c.id.String())
}

func next[T, U any](c Chain[T], step string, res result.Result[U, error]) Chain[U] {
	log := c.logger()
	switch {
	case c.res.IsFailure():
		log.V(2).Info("step skipped", "step", step)
	case res.IsFailure():
		log.Error(res.UnwrapFailure(), "step failed", "step", step)
	default:
		log.V(1).Info("step done", "step", step, "result", res.String())
	}
	return Chain[U]{ctx: c.ctx, id: c.id, res: res}
}
