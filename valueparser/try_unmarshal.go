package valueparser

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/falkordb/falkordb-go/falkorerrors"
)

// TryUnmarshal is a generic function that converts a string value to the specified type T
// through the UnmarshalText or Unmarshal method of a new value of valueType.
// It returns an error if valueType has neither method or the conversion fails.
//
// Example usage:
//
//	customValue, err := TryUnmarshal[uint64]("FIRST", reflect.TypeOf(YourCustomType(0)))
//	if err != nil {
//		// Handle error
//	}
func TryUnmarshal[T ParsableType](value string, valueType reflect.Type) (T, falkorerrors.Error) {
	var zero T

	typ := reflect.TypeOf(zero)
	ptr := reflect.New(valueType)

	if unmarshaler, ok := ptr.Interface().(encoding.TextUnmarshaler); ok {
		if err := unmarshaler.UnmarshalText([]byte(value)); err != nil {
			return zero, falkorerrors.FromError(
				falkorerrors.ParsingString,
				err,
				fmt.Sprintf(
					"try unmarshal: cannot convert value %v to type %s",
					value,
					valueType,
				),
			)
		}
	} else if unmarshaler, ok := ptr.Interface().(Unmarshalable); ok {
		if err := unmarshaler.Unmarshal(value); err != nil {
			return zero, falkorerrors.FromError(
				falkorerrors.ParsingString,
				ErrUnparsableValue,
				fmt.Sprintf(
					"try unmarshal: %v cannot be unmarshaled to type %s: %v",
					value,
					valueType,
					err,
				),
			)
		}
	} else {
		return zero, falkorerrors.FromError(
			falkorerrors.ParsingString,
			ErrUnparsableValue,
			"try unmarshal: Unmarshalable interface not implemented",
		)
	}

	val, err := ConvertValue(ptr.Elem(), typ)
	if err != nil {
		return zero, err.Wrap(
			fmt.Sprintf(
				"try unmarshal: cannot convert value %v to type %s",
				value,
				typ,
			),
		)
	}

	if val, ok := val.Interface().(T); ok {
		return val, nil
	}

	return zero, falkorerrors.FromError(
		falkorerrors.ParsingString,
		ErrInvalidValue,
		"try unmarshal",
	)
}
