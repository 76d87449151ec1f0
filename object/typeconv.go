package object

import (
	"encoding/json"
)

// *****************************************************************************
// Type assertion helpers
// *****************************************************************************

func AsBool(obj Object) (bool, error) {
	b, ok := obj.(*Bool)
	if !ok {
		return false, TypeErrorf("type error: expected a bool (%s given)", obj.Type())
	}
	return b.value, nil
}

func AsInt(obj Object) (int64, error) {
	i, ok := obj.(*Int)
	if !ok {
		return 0, TypeErrorf("type error: expected an integer (%s given)", obj.Type())
	}
	return i.value, nil
}

func AsFloat(obj Object) (float64, error) {
	switch obj := obj.(type) {
	case *Int:
		return float64(obj.value), nil
	case *Float:
		return obj.value, nil
	default:
		return 0.0, TypeErrorf("type error: expected a number (%s given)", obj.Type())
	}
}

func AsList(obj Object) (*List, error) {
	list, ok := obj.(*List)
	if !ok {
		return nil, TypeErrorf("type error: expected a list (%s given)", obj.Type())
	}
	return list, nil
}

// *****************************************************************************
// Converting from Go types to objects
// *****************************************************************************

// FromGoType converts a Go value to an Object. Unsupported types produce an
// Error object.
func FromGoType(obj interface{}) Object {
	switch obj := obj.(type) {
	case nil:
		return Nil
	case Object:
		return obj
	case bool:
		return NewBool(obj)
	case int:
		return NewInt(int64(obj))
	case int32:
		return NewInt(int64(obj))
	case int64:
		return NewInt(obj)
	case uint8:
		return NewInt(int64(obj))
	case uint32:
		return NewInt(int64(obj))
	case float32:
		return NewFloat(float64(obj))
	case float64:
		return NewFloat(obj)
	case string:
		return NewString(obj)
	case json.Number:
		if i, err := obj.Int64(); err == nil {
			return NewInt(i)
		}
		if f, err := obj.Float64(); err == nil {
			return NewFloat(f)
		}
		return NewString(obj.String())
	case []string:
		items := make([]Object, 0, len(obj))
		for _, s := range obj {
			items = append(items, NewString(s))
		}
		return NewList(items)
	case []interface{}:
		items := make([]Object, 0, len(obj))
		for _, item := range obj {
			converted := FromGoType(item)
			if IsError(converted) {
				return converted
			}
			items = append(items, converted)
		}
		return NewList(items)
	default:
		return TypeErrorf("type error: unsupported go type %T", obj)
	}
}
