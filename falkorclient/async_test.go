package falkorclient_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falkordb/falkordb-go/falkorclient"
	"github.com/falkordb/falkordb-go/falkorerrors"
)

func TestNewAsyncClient_RefusesSingleProcUnlessAllowed(t *testing.T) {
	client, srv := newTestClient(t)
	defer srv.Close()
	defer client.Close()

	if runtime.GOMAXPROCS(0) > 1 {
		t.Skip("this process has GOMAXPROCS > 1; the refusal path isn't reachable here")
	}

	_, err := falkorclient.NewAsyncClient(client)
	require.NotNil(t, err)
	assert.Equal(t, falkorerrors.SingleThreadedRuntime, err.Code())

	allowed, allowErr := falkorclient.NewAsyncClient(client, falkorclient.WithAllowSingleProc())
	require.Nil(t, allowErr)
	require.NotNil(t, allowed)
}

func TestGo_DeliversResultOnChannel(t *testing.T) {
	result := <-falkorclient.Go(context.Background(), func(context.Context) (int, falkorerrors.Error) {
		return 42, nil
	})

	require.Nil(t, result.Err())
	assert.Equal(t, 42, result.Value())
}

func TestGo_DeliversErrorOnChannel(t *testing.T) {
	want := falkorerrors.FromString(falkorerrors.ConnectionDown, "boom")

	result := <-falkorclient.Go(context.Background(), func(context.Context) (int, falkorerrors.Error) {
		return 0, want
	})

	require.NotNil(t, result.Err())
	assert.Equal(t, falkorerrors.ConnectionDown, result.Err().Code())
}
