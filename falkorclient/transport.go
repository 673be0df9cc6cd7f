// Package falkorclient is the top-level public surface: Client opens
// graph handles against a shared connection pool, and exposes the
// cross-graph operations (GRAPH.LIST, GRAPH.CONFIG, GRAPH.COPY, INFO)
// that don't belong to any single Graph.
package falkorclient

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorpool"
)

// withConnection mirrors falkorgraph's helper of the same name: borrow,
// run, release, poisoning the guard on a ConnectionDown result. Kept as
// a package-local copy rather than exported from falkorgraph, since a
// Client operates across graphs and has no Graph receiver to hang it
// off of.
func withConnection[T any](ctx context.Context, pool *falkorpool.Pool, fn func(*redis.Conn) (T, falkorerrors.Error)) (T, falkorerrors.Error) {
	var zero T

	guard, err := pool.Borrow(ctx)
	if err != nil {
		return zero, err.Wrap("borrow connection")
	}
	defer guard.Release()

	conn, err := guard.Conn()
	if err != nil {
		return zero, err.Wrap("borrow connection")
	}

	result, fnErr := fn(conn)
	if fnErr != nil && fnErr.Code() == falkorerrors.ConnectionDown {
		guard.Poison()
	}

	return result, fnErr
}
