package object

// ErrorKind classifies the errors raised by builtins.
type ErrorKind int

const (
	ErrRuntime ErrorKind = iota
	ErrArgs
	ErrType
	ErrValue
)

func (k ErrorKind) String() string {
	switch k {
	case ErrArgs:
		return "args error"
	case ErrType:
		return "type error"
	case ErrValue:
		return "value error"
	default:
		return "runtime error"
	}
}

// ArgsError is used to indicate that a function was called with the wrong
// number of arguments.
type ArgsError struct {
	Err error
}

func (a *ArgsError) Error() string {
	return a.Err.Error()
}

func (a *ArgsError) Unwrap() error {
	return a.Err
}

// TypeError is used to indicate an argument of an unexpected type.
type TypeError struct {
	Err error
}

func (t *TypeError) Error() string {
	return t.Err.Error()
}

func (t *TypeError) Unwrap() error {
	return t.Err
}

// ValueError is used to indicate an argument of the right type but with an
// unacceptable value.
type ValueError struct {
	Err error
}

func (v *ValueError) Error() string {
	return v.Err.Error()
}

func (v *ValueError) Unwrap() error {
	return v.Err
}

func kindOf(err error) ErrorKind {
	switch err.(type) {
	case *ArgsError:
		return ErrArgs
	case *TypeError:
		return ErrType
	case *ValueError:
		return ErrValue
	default:
		return ErrRuntime
	}
}
