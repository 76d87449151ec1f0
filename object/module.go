package object

import "fmt"

// Module is a named collection of builtins.
type Module struct {
	name     string
	builtins map[string]Object
}

func (m *Module) GetAttr(name string) (Object, bool) {
	if name == "__name__" {
		return NewString(m.name), true
	}
	builtin, found := m.builtins[name]
	return builtin, found
}

func (m *Module) IsTruthy() bool {
	return true
}

func (m *Module) Type() Type {
	return MODULE
}

func (m *Module) Inspect() string {
	return m.String()
}

func (m *Module) Interface() interface{} {
	return nil
}

func (m *Module) String() string {
	return fmt.Sprintf("module(%s)", m.name)
}

func (m *Module) Name() *String {
	return NewString(m.name)
}

// Names returns the sorted names of the module's attributes.
func (m *Module) Names() []string {
	return Keys(m.builtins)
}

func (m *Module) Equals(other Object) bool {
	otherModule, ok := other.(*Module)
	if !ok {
		return false
	}
	return m == otherModule
}

func (m *Module) MarshalJSON() ([]byte, error) {
	return nil, TypeErrorf("unable to marshal module")
}

func NewBuiltinsModule(name string, contents map[string]Object) *Module {
	builtins := map[string]Object{}
	for k, v := range contents {
		builtins[k] = v
	}
	m := &Module{
		name:     name,
		builtins: builtins,
	}
	for _, v := range builtins {
		if builtin, ok := v.(*Builtin); ok {
			builtin.module = m
		}
	}
	return m
}
