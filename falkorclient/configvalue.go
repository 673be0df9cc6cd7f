package falkorclient

import (
	"strconv"

	"github.com/falkordb/falkordb-go/falkorerrors"
)

// ConfigValueKind discriminates the two shapes GRAPH.CONFIG accepts and
// returns.
type ConfigValueKind uint8

const (
	ConfigValueInt64 ConfigValueKind = iota
	ConfigValueString
)

// ConfigValue is the two-variant sum GRAPH.CONFIG GET/SET speaks: the
// server reports each value as either a bulk integer or a bulk string,
// with no further typing.
type ConfigValue struct {
	kind ConfigValueKind
	i64  int64
	str  string
}

// Int64Value builds an Int64-kind ConfigValue.
func Int64Value(v int64) ConfigValue {
	return ConfigValue{kind: ConfigValueInt64, i64: v}
}

// StringValue builds a String-kind ConfigValue.
func StringValue(v string) ConfigValue {
	return ConfigValue{kind: ConfigValueString, str: v}
}

// Kind reports which variant is set.
func (c ConfigValue) Kind() ConfigValueKind {
	return c.kind
}

// Int64 returns the wrapped integer and true iff Kind is ConfigValueInt64.
func (c ConfigValue) Int64() (int64, bool) {
	return c.i64, c.kind == ConfigValueInt64
}

// String renders the value as the server would for a GRAPH.CONFIG SET
// command argument.
func (c ConfigValue) String() string {
	if c.kind == ConfigValueInt64 {
		return strconv.FormatInt(c.i64, 10)
	}

	return c.str
}

// arg returns the value in the shape conn.Do expects for a
// GRAPH.CONFIG SET argument.
func (c ConfigValue) arg() any {
	if c.kind == ConfigValueInt64 {
		return c.i64
	}

	return c.str
}

// parseConfigValue classifies a raw reply cell by its RESP type, the way
// the server itself discriminates int replies from bulk-string replies —
// not by sniffing whether a string happens to look numeric.
func parseConfigValue(raw any) (ConfigValue, falkorerrors.Error) {
	switch v := raw.(type) {
	case int64:
		return Int64Value(v), nil
	case string:
		return StringValue(v), nil
	default:
		return ConfigValue{}, falkorerrors.FromString(
			falkorerrors.ParsingConfigValue,
			"config value is neither an integer nor a string reply",
		)
	}
}
