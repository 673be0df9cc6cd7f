package falkorclient_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falkordb/falkordb-go/falkorclient"
	"github.com/falkordb/falkordb-go/falkorerrors"
)

func newTestClient(t *testing.T) (*falkorclient.Client, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)

	client, err := falkorclient.NewClientBuilder().
		WithURL("redis://" + srv.Addr()).
		WithPoolSize(2).
		Build(context.Background())
	require.Nil(t, err)

	return client, srv
}

func TestBuild_RejectsBadURL(t *testing.T) {
	_, err := falkorclient.NewClientBuilder().WithURL("://nope").Build(context.Background())
	require.NotNil(t, err)
	assert.Equal(t, falkorerrors.InvalidConnectionInfo, err.Code())
}

func TestBuild_RejectsInvalidPoolSize(t *testing.T) {
	srv := miniredis.RunT(t)

	_, err := falkorclient.NewClientBuilder().
		WithURL("redis://" + srv.Addr()).
		WithPoolSize(0).
		Build(context.Background())
	require.NotNil(t, err)
	assert.Equal(t, falkorerrors.InvalidPoolSize, err.Code())
}

func TestFromConfig_SeedsDefaultTimeoutIntoQueries(t *testing.T) {
	srv := miniredis.RunT(t)

	cfg := &falkorclient.Config{URL: "redis://" + srv.Addr(), PoolSize: 2, DefaultTimeoutMS: 250}

	client, err := falkorclient.NewClientBuilder().FromConfig(cfg).Build(context.Background())
	require.Nil(t, err)
	defer client.Close()

	args := client.SelectGraph("social").Query("MATCH (n) RETURN n").Args()
	require.Len(t, args, 5)
	assert.Equal(t, "timeout 250", args[4])
}

func TestSelectGraph_SharesHandleAcrossCalls(t *testing.T) {
	client, srv := newTestClient(t)
	defer srv.Close()
	defer client.Close()

	first := client.SelectGraph("social")
	second := client.SelectGraph("social")

	assert.Same(t, first, second)
}

func TestSelectGraph_DistinctNamesGetDistinctHandles(t *testing.T) {
	client, srv := newTestClient(t)
	defer srv.Close()
	defer client.Close()

	a := client.SelectGraph("a")
	b := client.SelectGraph("b")

	assert.NotSame(t, a, b)
}

func TestPing_Succeeds(t *testing.T) {
	client, srv := newTestClient(t)
	defer srv.Close()
	defer client.Close()

	require.Nil(t, client.Ping(context.Background()))
}

func TestListGraphs_PropagatesTransportError(t *testing.T) {
	client, srv := newTestClient(t)
	defer srv.Close()
	defer client.Close()

	// miniredis doesn't implement GRAPH.LIST; this exercises the error
	// path rather than the happy path, which needs a real FalkorDB
	// module loaded.
	_, err := client.ListGraphs(context.Background())
	require.NotNil(t, err)
}

func TestConfigGet_PropagatesTransportError(t *testing.T) {
	client, srv := newTestClient(t)
	defer srv.Close()
	defer client.Close()

	_, err := client.ConfigGet(context.Background(), "*")
	require.NotNil(t, err)
}

func TestConfigSet_PropagatesTransportError(t *testing.T) {
	client, srv := newTestClient(t)
	defer srv.Close()
	defer client.Close()

	err := client.ConfigSet(context.Background(), "MAX_QUEUED_QUERIES", falkorclient.Int64Value(4294967295))
	require.NotNil(t, err)
}

func TestBuildFromSocket_RejectsOverlongPath(t *testing.T) {
	overlong := make([]byte, 200)
	for i := range overlong {
		overlong[i] = 'a'
	}

	_, err := falkorclient.NewClientBuilder().BuildFromSocket(context.Background(), string(overlong))
	require.NotNil(t, err)
	assert.Equal(t, falkorerrors.InvalidConnectionInfo, err.Code())
}
