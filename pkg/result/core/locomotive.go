package core

import (
	"context"
	"sync"

	"github.com/go-logr/logr"

	"github.com/ib-77/result/pkg/result"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan result.Result[In, error], outCh chan<- result.Result[Out, error])
	OnCancelUnprocessed func(ctx context.Context, unprocessed result.Result[In, error], outCh chan<- result.Result[Out, error])
	OnCancelProcessed   func(ctx context.Context, in result.Result[In, error], processed result.Result[Out, error], outCh chan<- result.Result[Out, error])
}

// Locomotive is one worker: it takes items from inputCh, runs engine on each
// and forwards the outcome to outCh until inputCh closes or ctx is done.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan result.Result[In, error], outCh chan<- result.Result[Out, error],
	engine func(ctx context.Context, input result.Result[In, error]) <-chan result.Result[Out, error],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in result.Result[Out, error]), wg *sync.WaitGroup) {
	defer wg.Done()

	log := logr.FromContextOrDiscard(ctx).WithName("locomotive")

	for {
		select {
		case <-ctx.Done():
			log.V(1).Info("canceled while idle", "reason", ctx.Err())
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				log.V(1).Info("canceled before processing", "input", in.String())
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					// the engine saw ctx done and dropped the item
					log.V(1).Info("engine canceled", "input", in.String())
					if handlers.OnCancelUnprocessed != nil {
						handlers.OnCancelUnprocessed(ctx, in, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				}

				select {
				case <-ctx.Done():
					log.V(1).Info("canceled after processing", "input", in.String(), "output", pr.String())
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}

// FailRemaining drains inputCh, sending every remaining item to outCh as a
// failure carrying ctx.Err(). It is a ready-made OnCancel handler; the sends
// block, so the reader of outCh must keep reading until it closes.
func FailRemaining[In, Out any](ctx context.Context, inputCh <-chan result.Result[In, error], outCh chan<- result.Result[Out, error]) {
	for range inputCh {
		outCh <- result.Failure[Out](ctx.Err())
	}
}

// FailUnprocessed sends an item taken but not processed as a failure carrying
// ctx.Err(). It is a ready-made OnCancelUnprocessed handler.
func FailUnprocessed[In, Out any](ctx context.Context, _ result.Result[In, error], outCh chan<- result.Result[Out, error]) {
	outCh <- result.Failure[Out](ctx.Err())
}

// PassProcessed forwards an item that finished processing as cancellation
// arrived. It is a ready-made OnCancelProcessed handler.
func PassProcessed[In, Out any](_ context.Context, _ result.Result[In, error], processed result.Result[Out, error], outCh chan<- result.Result[Out, error]) {
	outCh <- processed
}
