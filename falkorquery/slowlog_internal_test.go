package falkorquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlowlog_MultipleRows(t *testing.T) {
	raw := []any{
		[]any{"1690000000", "GRAPH.QUERY", "MATCH (n) RETURN n", "1.25"},
		[]any{"1690000001", "GRAPH.QUERY", "MATCH (n)-->(m) RETURN m", "0.5"},
	}

	entries, err := parseSlowlog(raw)
	require.Nil(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1690000000), entries[0].Timestamp)
	assert.Equal(t, "GRAPH.QUERY", entries[0].Command)
	assert.InDelta(t, 1.25, entries[0].TimeTaken, 0.0001)
}

func TestParseSlowlog_MalformedRowFails(t *testing.T) {
	raw := []any{[]any{"1", "GRAPH.QUERY", "q"}}

	_, err := parseSlowlog(raw)
	require.NotNil(t, err)
}

func TestParseSlowlogEntry_BadTimestampFails(t *testing.T) {
	_, err := parseSlowlogEntry([]any{"not-a-number", "GRAPH.QUERY", "q", "1.0"})
	require.NotNil(t, err)
}
