package falkorgraph_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falkordb/falkordb-go/connectioninfo"
	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorgraph"
	"github.com/falkordb/falkordb-go/falkorlog"
	"github.com/falkordb/falkordb-go/falkorpool"
	"github.com/falkordb/falkordb-go/falkorquery"
	"github.com/falkordb/falkordb-go/falkorschema"
)

func newTestGraph(t *testing.T) (*falkorgraph.Graph, *falkorpool.Pool, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	info, err := connectioninfo.ParseURL("redis://" + srv.Addr())
	require.Nil(t, err)

	log := falkorlog.NewBaseLogger(nil).NewLogger()

	pool, poolErr := falkorpool.New(context.Background(), info, 2, log)
	require.Nil(t, poolErr)

	return falkorgraph.New("social", pool, 0), pool, srv
}

func TestNew_SetsGraphName(t *testing.T) {
	g, pool, _ := newTestGraph(t)
	defer pool.Close()

	assert.Equal(t, "social", g.Name())
}

func TestQuery_BuildsReadWriteArgs(t *testing.T) {
	g, pool, _ := newTestGraph(t)
	defer pool.Close()

	args := g.Query("MATCH (n) RETURN n").Args()

	require.Len(t, args, 4)
	assert.Equal(t, falkorquery.CommandQuery, args[0])
	assert.Equal(t, "social", args[1])
	assert.Equal(t, "MATCH (n) RETURN n", args[2])
	assert.Equal(t, "--compact", args[3])
}

func TestQuery_AppliesConfiguredDefaultTimeout(t *testing.T) {
	srv := miniredis.RunT(t)
	info, err := connectioninfo.ParseURL("redis://" + srv.Addr())
	require.Nil(t, err)

	log := falkorlog.NewBaseLogger(nil).NewLogger()

	pool, poolErr := falkorpool.New(context.Background(), info, 2, log)
	require.Nil(t, poolErr)
	defer pool.Close()

	g := falkorgraph.New("social", pool, 500)

	args := g.Query("MATCH (n) RETURN n").Args()
	require.Len(t, args, 5)
	assert.Equal(t, "timeout 500", args[4])
}

func TestQuery_ExplicitTimeoutOverridesDefault(t *testing.T) {
	srv := miniredis.RunT(t)
	info, err := connectioninfo.ParseURL("redis://" + srv.Addr())
	require.Nil(t, err)

	log := falkorlog.NewBaseLogger(nil).NewLogger()

	pool, poolErr := falkorpool.New(context.Background(), info, 2, log)
	require.Nil(t, poolErr)
	defer pool.Close()

	g := falkorgraph.New("social", pool, 500)

	args := g.Query("MATCH (n) RETURN n").WithTimeout(10).Args()
	require.Len(t, args, 5)
	assert.Equal(t, "timeout 10", args[4])
}

func TestROQuery_BuildsReadOnlyArgs(t *testing.T) {
	g, pool, _ := newTestGraph(t)
	defer pool.Close()

	args := g.ROQuery("MATCH (n) RETURN n").Args()

	require.Len(t, args, 4)
	assert.Equal(t, falkorquery.CommandQueryRO, args[0])
}

func TestExecute_PropagatesTransportError(t *testing.T) {
	g, pool, srv := newTestGraph(t)
	defer pool.Close()

	srv.Close()

	_, err := g.Execute(context.Background(), g.Query("MATCH (n) RETURN n"))
	require.NotNil(t, err)
}

func TestDelete_PropagatesServerError(t *testing.T) {
	g, pool, _ := newTestGraph(t)
	defer pool.Close()

	// miniredis doesn't implement GRAPH.DELETE, so the command errors
	// before a real delete happens.
	err := g.Delete(context.Background())
	require.NotNil(t, err)
}

func TestCallProcedure_ComposesArgsAndYields(t *testing.T) {
	g, pool, _ := newTestGraph(t)
	defer pool.Close()

	// CallProcedure builds its query through the same procedure-call
	// sugar covered by falkorquery's own tests; here we only check it
	// reaches the transport (errors on miniredis, since DB.IDX.* isn't
	// implemented there) rather than panicking on nil builder state.
	_, err := g.CallProcedure(context.Background(), "db.idx.fulltext.queryNodes", []string{"Person", "alice"}, []string{"node"}, true)
	require.NotNil(t, err)
}

func TestListIndices_PropagatesTransportError(t *testing.T) {
	g, pool, _ := newTestGraph(t)
	defer pool.Close()

	_, err := g.ListIndices(context.Background())
	require.NotNil(t, err)
}

func TestCreateIndex_PropagatesTransportError(t *testing.T) {
	g, pool, _ := newTestGraph(t)
	defer pool.Close()

	err := g.CreateIndex(context.Background(), falkorquery.IndexTypeRange, falkorquery.EntityTypeNode, "Person", []string{"name"})
	require.NotNil(t, err)
}

func TestCreateUniqueConstraint_PropagatesTransportError(t *testing.T) {
	g, pool, _ := newTestGraph(t)
	defer pool.Close()

	err := g.CreateUniqueConstraint(context.Background(), falkorquery.EntityTypeNode, "Person", []string{"email"})
	require.NotNil(t, err)
}

func TestNewGraph_SchemaVersionStartsAtZero(t *testing.T) {
	// A fresh Graph's cache has never been refreshed, so a direct
	// falkorschema.Cache with the same refresh func starts at version 0
	// too; this documents the invariant New relies on rather than
	// reaching into Graph's unexported cache field.
	called := false
	cache := falkorschema.NewCache(func(context.Context, falkorschema.Kind) ([]string, falkorerrors.Error) {
		called = true

		return nil, nil
	})

	assert.Equal(t, uint64(0), cache.Version())
	assert.False(t, called)
}
