package object

import (
	"encoding/json"
	"fmt"
)

// Error wraps a Go error interface and implements Object.
type Error struct {
	err  error
	kind ErrorKind
}

func (e *Error) Type() Type {
	return ERROR
}

func (e *Error) Inspect() string {
	return fmt.Sprintf("error(%q)", e.err.Error())
}

func (e *Error) String() string {
	return e.err.Error()
}

func (e *Error) Value() error {
	return e.err
}

func (e *Error) Interface() interface{} {
	return e.err
}

func (e *Error) Kind() ErrorKind {
	return e.kind
}

func (e *Error) Equals(other Object) bool {
	otherError, ok := other.(*Error)
	if !ok {
		return false
	}
	return e.err.Error() == otherError.err.Error()
}

func (e *Error) GetAttr(name string) (Object, bool) {
	switch name {
	case "message":
		return NewString(e.err.Error()), true
	case "kind":
		return NewString(e.kind.String()), true
	default:
		return nil, false
	}
}

func (e *Error) IsTruthy() bool {
	return true
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"error": e.err.Error(),
		"kind":  e.kind.String(),
	})
}

func NewError(err error) *Error {
	if e, ok := err.(*Error); ok { // unwrap to get the inner error, to avoid unhelpful nesting
		return &Error{err: e.err, kind: e.kind}
	}
	return &Error{err: err, kind: kindOf(err)}
}

func IsError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR
	}
	return false
}
