package core

import "context"

type optionsKey struct{}

// Options configures the concurrent stages. It travels in the context so
// stages built deep inside a pipeline see the same settings.
type Options struct {
	// Workers is the number of lines a stage runs when the caller passes a
	// non-positive count.
	Workers int
	// ProcessRemaining makes stages emit the items still queued at
	// cancellation as failures instead of dropping them.
	ProcessRemaining bool
}

func WithOptions(ctx context.Context, options Options) context.Context {
	return context.WithValue(ctx, optionsKey{}, options)
}

// OptionsFrom returns the options stored in ctx, or the zero Options.
func OptionsFrom(ctx context.Context) Options {
	options, _ := ctx.Value(optionsKey{}).(Options)
	return options
}

func WithWorkerOptions(ctx context.Context, workers int) context.Context {
	options := OptionsFrom(ctx)
	options.Workers = workers
	return WithOptions(ctx, options)
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	options := OptionsFrom(ctx)
	options.ProcessRemaining = processRemaining
	return WithOptions(ctx, options)
}

// Lines resolves the worker count for a stage: requested when positive,
// then the configured Workers, then fallback.
func (o Options) Lines(requested, fallback int) int {
	switch {
	case requested > 0:
		return requested
	case o.Workers > 0:
		return o.Workers
	default:
		return fallback
	}
}
