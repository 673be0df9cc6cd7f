package valueparser_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falkordb/falkordb-go/valueparser"
)

type fahrenheit uint64

func (f *fahrenheit) Unmarshal(data string) error {
	switch data {
	case "FREEZING":
		*f = 32
	case "BOILING":
		*f = 212
	default:
		return valueparser.ErrUnparsableValue
	}

	return nil
}

func TestParseValue_Primitives(t *testing.T) {
	i, err := valueparser.ParseValue[int]("42")
	require.Nil(t, err)
	assert.Equal(t, 42, i)

	f, err := valueparser.ParseValue[float64]("3.5")
	require.Nil(t, err)
	assert.InEpsilon(t, 3.5, f, 0.0001)

	b, err := valueparser.ParseValue[bool]("true")
	require.Nil(t, err)
	assert.True(t, b)

	s, err := valueparser.ParseValue[string]("hello")
	require.Nil(t, err)
	assert.Equal(t, "hello", s)
}

func TestParseValue_InvalidInt(t *testing.T) {
	_, err := valueparser.ParseValue[int]("not-a-number")
	require.NotNil(t, err)
}

func TestParseValueWithCustomType_UsesUnmarshalable(t *testing.T) {
	val, err := valueparser.ParseValueWithCustomType[uint64](
		"BOILING",
		reflect.TypeOf(fahrenheit(0)),
	)
	require.Nil(t, err)
	assert.Equal(t, uint64(212), val)
}

func TestParseValueWithCustomType_UnknownEnumValue(t *testing.T) {
	_, err := valueparser.ParseValueWithCustomType[uint64](
		"LUKEWARM",
		reflect.TypeOf(fahrenheit(0)),
	)
	require.NotNil(t, err)
}

func TestParseArray_Defaults(t *testing.T) {
	arr, err := valueparser.ParseArray[int]("1,2,3", nil)
	require.Nil(t, err)
	assert.Equal(t, []int{1, 2, 3}, arr)
}

func TestParseArray_EmptyString(t *testing.T) {
	arr, err := valueparser.ParseArray[string]("", nil)
	require.Nil(t, err)
	assert.Empty(t, arr)
}

func TestParseArray_CustomSeparator(t *testing.T) {
	sep := "|"

	arr, err := valueparser.ParseArray[string]("a|b|c", &sep)
	require.Nil(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, arr)
}

func TestParseArray_PropagatesElementError(t *testing.T) {
	_, err := valueparser.ParseArray[int]("1,x,3", nil)
	require.NotNil(t, err)
}

func TestParseMap_Defaults(t *testing.T) {
	m, err := valueparser.ParseMap[string, int]("a:1,b:2", nil, nil)
	require.Nil(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, m)
}

func TestParseMap_EmptyString(t *testing.T) {
	m, err := valueparser.ParseMap[string, int]("", nil, nil)
	require.Nil(t, err)
	assert.Empty(t, m)
}

func TestParseMap_MalformedEntry(t *testing.T) {
	_, err := valueparser.ParseMap[string, int]("a:1,b", nil, nil)
	require.NotNil(t, err)
}

func TestParseMap_CustomSeparators(t *testing.T) {
	entrySep := ";"
	kvSep := "="

	m, err := valueparser.ParseMap[string, int]("a=1;b=2", &entrySep, &kvSep)
	require.Nil(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, m)
}

func TestConvertValue_ConvertibleTypes(t *testing.T) {
	out, err := valueparser.ConvertValue(reflect.ValueOf(int32(7)), reflect.TypeOf(int64(0)))
	require.Nil(t, err)
	assert.Equal(t, int64(7), out.Interface())
}

func TestConvertValue_InvalidValue(t *testing.T) {
	_, err := valueparser.ConvertValue(reflect.Value{}, reflect.TypeOf(0))
	require.NotNil(t, err)
}

func TestConvertValue_NotConvertible(t *testing.T) {
	_, err := valueparser.ConvertValue(reflect.ValueOf(map[string]int{}), reflect.TypeOf(0))
	require.NotNil(t, err)
}

func TestTryUnmarshal_Unmarshalable(t *testing.T) {
	val, err := valueparser.TryUnmarshal[uint64]("FREEZING", reflect.TypeOf(fahrenheit(0)))
	require.Nil(t, err)
	assert.Equal(t, uint64(32), val)
}

func TestTryUnmarshal_NoImplementation(t *testing.T) {
	_, err := valueparser.TryUnmarshal[int]("123", reflect.TypeOf(0))
	require.NotNil(t, err)
}
