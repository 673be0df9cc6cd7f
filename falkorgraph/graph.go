package falkorgraph

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorpool"
	"github.com/falkordb/falkordb-go/falkorquery"
	"github.com/falkordb/falkordb-go/falkorschema"
)

// Graph is a per-graph-name handle: a reference to the shared
// connection pool plus the schema cache scoped to this graph. Every
// caller that selects the same graph name from one Client shares the
// same Graph instance, and therefore the same cache (Design Note
// "Per-graph vs per-client schema caches").
type Graph struct {
	name             string
	pool             *falkorpool.Pool
	cache            *falkorschema.Cache
	defaultTimeoutMS int64
}

// New builds a Graph bound to name, backed by pool, with a freshly
// empty schema cache. defaultTimeoutMS, if non-zero, is applied to
// every Query/ROQuery builder unless the caller overrides it with its
// own WithTimeout.
func New(name string, pool *falkorpool.Pool, defaultTimeoutMS int64) *Graph {
	return &Graph{
		name:             name,
		pool:             pool,
		cache:            falkorschema.NewCache(newSchemaRefreshFunc(pool, name)),
		defaultTimeoutMS: defaultTimeoutMS,
	}
}

// Name returns the graph's name.
func (g *Graph) Name() string {
	return g.name
}

// Query starts a read-write query builder against this graph, seeded
// with this graph's default timeout if one was configured.
func (g *Graph) Query(text string) *falkorquery.Builder {
	return g.withDefaultTimeout(falkorquery.NewQuery(g.name, text))
}

// ROQuery starts a read-only (GRAPH.QUERY_RO) query builder against
// this graph, seeded with this graph's default timeout if one was
// configured.
func (g *Graph) ROQuery(text string) *falkorquery.Builder {
	return g.withDefaultTimeout(falkorquery.NewReadOnlyQuery(g.name, text))
}

// withDefaultTimeout applies the graph's configured default timeout,
// if any. A later WithTimeout call on the returned builder overrides it.
func (g *Graph) withDefaultTimeout(b *falkorquery.Builder) *falkorquery.Builder {
	if g.defaultTimeoutMS != 0 {
		b = b.WithTimeout(g.defaultTimeoutMS)
	}

	return b
}

// Execute runs b against this graph's pool and schema cache.
func (g *Graph) Execute(ctx context.Context, b *falkorquery.Builder) (*falkorquery.QueryResult, falkorerrors.Error) {
	return withConnection(ctx, g.pool, func(conn *redis.Conn) (*falkorquery.QueryResult, falkorerrors.Error) {
		return falkorquery.Run(ctx, conn, g.cache, b)
	})
}

// Explain returns the planner's steps for text without running it.
func (g *Graph) Explain(ctx context.Context, text string) (falkorquery.ExecutionPlan, falkorerrors.Error) {
	return withConnection(ctx, g.pool, func(conn *redis.Conn) (falkorquery.ExecutionPlan, falkorerrors.Error) {
		return falkorquery.RunExplain(ctx, conn, g.name, text)
	})
}

// Profile runs text and returns the planner's steps annotated with
// actual execution figures.
func (g *Graph) Profile(ctx context.Context, text string) (falkorquery.ExecutionPlan, falkorerrors.Error) {
	return withConnection(ctx, g.pool, func(conn *redis.Conn) (falkorquery.ExecutionPlan, falkorerrors.Error) {
		return falkorquery.RunProfile(ctx, conn, g.name, text)
	})
}

// Slowlog returns the N slowest recent queries against this graph.
func (g *Graph) Slowlog(ctx context.Context) ([]falkorquery.SlowlogEntry, falkorerrors.Error) {
	return withConnection(ctx, g.pool, func(conn *redis.Conn) ([]falkorquery.SlowlogEntry, falkorerrors.Error) {
		return falkorquery.RunSlowlog(ctx, conn, g.name)
	})
}

// SlowlogReset clears this graph's slowlog.
func (g *Graph) SlowlogReset(ctx context.Context) falkorerrors.Error {
	_, err := withConnection(ctx, g.pool, func(conn *redis.Conn) (struct{}, falkorerrors.Error) {
		return struct{}{}, falkorquery.RunSlowlogReset(ctx, conn, g.name)
	})

	return err
}

// Delete drops this graph on the server and clears its local schema
// cache, so a later SelectGraph of the same name starts from a clean
// cache rather than stale ids from the deleted graph.
func (g *Graph) Delete(ctx context.Context) falkorerrors.Error {
	_, err := withConnection(ctx, g.pool, func(conn *redis.Conn) (any, falkorerrors.Error) {
		return falkorquery.RunRaw(ctx, conn, []any{falkorquery.CommandDelete, g.name})
	})
	if err != nil {
		return err.Wrap("delete graph " + g.name)
	}

	g.cache.Clear()

	return nil
}

// Copy duplicates this graph under newName on the server.
func (g *Graph) Copy(ctx context.Context, newName string) falkorerrors.Error {
	_, err := withConnection(ctx, g.pool, func(conn *redis.Conn) (any, falkorerrors.Error) {
		return falkorquery.RunRaw(ctx, conn, []any{falkorquery.CommandCopy, g.name, newName})
	})

	return err
}

// CallProcedure issues an arbitrary "CALL proc(args) [YIELD yields]"
// query, read-only or read-write, against this graph. Exposed publicly
// since user Cypher scripts commonly need procedure calls beyond the
// schema-introspection ones used internally.
func (g *Graph) CallProcedure(ctx context.Context, procedure string, args, yields []string, readonly bool) (*falkorquery.QueryResult, falkorerrors.Error) {
	b := falkorquery.NewProcedureCall(g.name, procedure, readonly).WithArgs(args).WithYields(yields).Build()

	return g.Execute(ctx, b)
}

// ListIndices calls DB.INDEXES and decodes the graph's registered
// indices.
func (g *Graph) ListIndices(ctx context.Context) ([]falkorquery.Index, falkorerrors.Error) {
	return withConnection(ctx, g.pool, func(conn *redis.Conn) ([]falkorquery.Index, falkorerrors.Error) {
		return falkorquery.RunListIndices(ctx, conn, g.cache, g.name)
	})
}

// CreateIndex creates an index of kind on entity's label, covering
// props.
func (g *Graph) CreateIndex(ctx context.Context, kind falkorquery.IndexType, entity falkorquery.EntityType, label string, props []string) falkorerrors.Error {
	_, err := g.Execute(ctx, falkorquery.CreateIndexQuery(g.name, kind, entity, label, props))

	return err
}

// DropIndex drops an index of kind on entity's label, covering props.
func (g *Graph) DropIndex(ctx context.Context, kind falkorquery.IndexType, entity falkorquery.EntityType, label string, props []string) falkorerrors.Error {
	_, err := g.Execute(ctx, falkorquery.DropIndexQuery(g.name, kind, entity, label, props))

	return err
}

// ListConstraints calls DB.CONSTRAINTS and decodes the graph's
// registered constraints.
func (g *Graph) ListConstraints(ctx context.Context) ([]falkorquery.Constraint, falkorerrors.Error) {
	return withConnection(ctx, g.pool, func(conn *redis.Conn) ([]falkorquery.Constraint, falkorerrors.Error) {
		return falkorquery.RunListConstraints(ctx, conn, g.cache, g.name)
	})
}

// CreateMandatoryConstraint requires props to be present on every
// entity.label entity.
func (g *Graph) CreateMandatoryConstraint(ctx context.Context, entity falkorquery.EntityType, label string, props []string) falkorerrors.Error {
	return withConnectionErr(ctx, g.pool, func(conn *redis.Conn) falkorerrors.Error {
		return falkorquery.RunCreateMandatoryConstraint(ctx, conn, g.name, entity, label, props)
	})
}

// CreateUniqueConstraint requires props to be unique across every
// entity.label entity. It first creates a supporting range index, as
// the server requires one to back a UNIQUE constraint.
func (g *Graph) CreateUniqueConstraint(ctx context.Context, entity falkorquery.EntityType, label string, props []string) falkorerrors.Error {
	return withConnectionErr(ctx, g.pool, func(conn *redis.Conn) falkorerrors.Error {
		return falkorquery.RunCreateUniqueConstraint(ctx, conn, g.cache, g.name, entity, label, props)
	})
}

// DropConstraint removes a previously created constraint.
func (g *Graph) DropConstraint(ctx context.Context, kind falkorquery.ConstraintKind, entity falkorquery.EntityType, label string, props []string) falkorerrors.Error {
	return withConnectionErr(ctx, g.pool, func(conn *redis.Conn) falkorerrors.Error {
		return falkorquery.RunDropConstraint(ctx, conn, g.name, kind, entity, label, props)
	})
}

// withConnectionErr adapts withConnection for operations that return
// only an error, with no payload worth threading through the generic.
func withConnectionErr(ctx context.Context, pool *falkorpool.Pool, fn func(*redis.Conn) falkorerrors.Error) falkorerrors.Error {
	_, err := withConnection(ctx, pool, func(conn *redis.Conn) (struct{}, falkorerrors.Error) {
		return struct{}{}, fn(conn)
	})

	return err
}
