package falkorclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigValue_Int64Reply(t *testing.T) {
	v, err := parseConfigValue(int64(42))
	require.Nil(t, err)
	assert.Equal(t, ConfigValueInt64, v.Kind())

	n, ok := v.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)
}

func TestParseConfigValue_StringReply(t *testing.T) {
	v, err := parseConfigValue("somevalue")
	require.Nil(t, err)
	assert.Equal(t, ConfigValueString, v.Kind())
	assert.Equal(t, "somevalue", v.String())
}

func TestParseConfigValue_NumericLookingStringStaysString(t *testing.T) {
	// The server discriminates by RESP reply type, not by content, so a
	// bulk string that looks numeric must not be coerced to Int64.
	v, err := parseConfigValue("4294967295")
	require.Nil(t, err)
	assert.Equal(t, ConfigValueString, v.Kind())
}

func TestParseConfigValue_UnsupportedTypeFails(t *testing.T) {
	_, err := parseConfigValue(3.14)
	require.NotNil(t, err)
}

func TestDecodeConfigPair_WrongArityFails(t *testing.T) {
	_, err := decodeConfigPair([]any{"only one"})
	require.NotNil(t, err)
}

func TestDecodeConfigPair_Valid(t *testing.T) {
	out, err := decodeConfigPair([]any{"THREAD_COUNT", int64(8)})
	require.Nil(t, err)
	require.Contains(t, out, "THREAD_COUNT")

	n, ok := out["THREAD_COUNT"].Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(8), n)
}

func TestConfigValue_ArgRendersRawPayload(t *testing.T) {
	assert.Equal(t, int64(5), Int64Value(5).arg())
	assert.Equal(t, "x", StringValue("x").arg())
}
