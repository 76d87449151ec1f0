// Package object provides the value types exchanged between scripts and Go
// builtins.
//
// Builtins receive and return object.Object values and type assert them to
// concrete types as needed:
//
//	switch obj := obj.(type) {
//	case *object.Int:
//		// do something with obj.Value()
//	case *object.List:
//		// do something with obj.Value()
//	}
//
// The Type() method of each object may also be used to get a string name of
// the object type, such as "int" or "list".
package object

import (
	"context"
	"fmt"
	"sort"
)

// Type of an object as a string.
type Type string

// Type constants
const (
	BOOL    Type = "bool"
	BUILTIN Type = "builtin"
	ERROR   Type = "error"
	FLOAT   Type = "float"
	INT     Type = "int"
	LIST    Type = "list"
	MODULE  Type = "module"
	NIL     Type = "nil"
	STRING  Type = "string"
)

var (
	Nil   = &NilType{}
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

// Object is the interface that all object types must implement.
type Object interface {
	// Type of the object.
	Type() Type

	// Inspect returns a string representation of the given object.
	Inspect() string

	// Interface converts the given object to a native Go value.
	Interface() interface{}

	// Returns true if the given object is equal to this object.
	Equals(other Object) bool

	// GetAttr returns the attribute with the given name from this object.
	GetAttr(name string) (Object, bool)

	// IsTruthy returns true if the object is considered "truthy".
	IsTruthy() bool
}

// Callable is an interface for objects that can be invoked as functions.
type Callable interface {
	// Call invokes the callable with the given arguments and returns the result.
	Call(ctx context.Context, args ...Object) (Object, error)
}

// Keys returns the keys of an object map as a sorted slice of strings.
func Keys(m map[string]Object) []string {
	var names []string
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// PrintableValue returns a value that should be used when printing an object.
func PrintableValue(obj Object) interface{} {
	switch obj := obj.(type) {
	// Primitive types have their underlying Go value passed to fmt.Printf
	// so that Go's Printf-style formatting directives work as expected.
	case *String,
		*Int,
		*Float,
		*Error,
		*Bool:
		return obj.Interface()
	}
	switch obj := obj.(type) {
	case fmt.Stringer:
		return obj.String()
	default:
		return obj.Inspect()
	}
}

// ArgsErrorf returns an Error object containing an arguments error.
func ArgsErrorf(format string, args ...interface{}) *Error {
	return NewError(&ArgsError{Err: fmt.Errorf(format, args...)})
}

// TypeErrorf returns an Error object containing a type error.
func TypeErrorf(format string, args ...interface{}) *Error {
	return NewError(&TypeError{Err: fmt.Errorf(format, args...)})
}

// ValueErrorf returns an Error object containing a value error. Use %w to
// keep the cause reachable with errors.Is.
func ValueErrorf(format string, args ...interface{}) *Error {
	return NewError(&ValueError{Err: fmt.Errorf(format, args...)})
}
