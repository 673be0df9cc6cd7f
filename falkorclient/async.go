package falkorclient

import (
	"context"
	"runtime"

	"github.com/falkordb/falkordb-go/falkorerrors"
)

// AsyncClient is the cooperative-concurrent flavor of Client (spec §5).
// Go has no language-level suspension points to name individually —
// every blocking call here already yields to the goroutine scheduler —
// so AsyncClient wraps the same Client and only adds the single-worker
// refusal the spec's async flavor requires: a GOMAXPROCS(0) == 1 process
// driving both the caller's event loop and a synchronous schema-refresh
// RPC deadlocks exactly as the reference runtime's single-worker case
// does, so construction refuses instead of hanging.
type AsyncClient struct {
	*Client
}

// asyncOptions accumulates NewAsyncClient's opt-in flags.
type asyncOptions struct {
	allowSingleProc bool
}

// AsyncOption configures NewAsyncClient.
type AsyncOption func(*asyncOptions)

// WithAllowSingleProc opts out of the GOMAXPROCS(0) == 1 refusal, for
// callers who have verified their workload never blocks the sole OS
// thread across a schema refresh.
func WithAllowSingleProc() AsyncOption {
	return func(o *asyncOptions) {
		o.allowSingleProc = true
	}
}

// NewAsyncClient wraps an already-built Client as an AsyncClient,
// refusing with SingleThreadedRuntime when GOMAXPROCS(0) == 1 unless
// WithAllowSingleProc was passed.
func NewAsyncClient(client *Client, opts ...AsyncOption) (*AsyncClient, falkorerrors.Error) {
	options := &asyncOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if runtime.GOMAXPROCS(0) == 1 && !options.allowSingleProc {
		return nil, falkorerrors.FromString(
			falkorerrors.SingleThreadedRuntime,
			"async client requires GOMAXPROCS > 1 unless WithAllowSingleProc is set",
		)
	}

	return &AsyncClient{Client: client}, nil
}

// Go runs fn in a new goroutine and delivers its error over the
// returned channel, the cooperative-concurrent flavor's equivalent of
// an awaited async call: the caller chooses when (or whether) to block
// on the result.
func Go[T any](ctx context.Context, fn func(context.Context) (T, falkorerrors.Error)) <-chan asyncResult[T] {
	out := make(chan asyncResult[T], 1)

	go func() {
		value, err := fn(ctx)
		out <- asyncResult[T]{value: value, err: err}
	}()

	return out
}

// asyncResult carries one async operation's outcome.
type asyncResult[T any] struct {
	value T
	err   falkorerrors.Error
}

// Value returns the result's payload.
func (r asyncResult[T]) Value() T {
	return r.value
}

// Err returns the result's error, if any.
func (r asyncResult[T]) Err() falkorerrors.Error {
	return r.err
}
