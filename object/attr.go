package object

// FuncSpec describes a builtin function.
// This provides metadata for introspection, documentation, and tooling.
type FuncSpec struct {
	// Name is the function name (e.g., "int", "sample").
	Name string `json:"name"`

	// Doc is a short description of what the function does.
	Doc string `json:"doc"`

	// Args lists parameter names (e.g., ["list"] or ["start", "end"]).
	Args []string `json:"args,omitempty"`

	// Returns describes the return type (e.g., "int", "list").
	Returns string `json:"returns"`

	// Example shows a short usage example (optional).
	Example string `json:"example,omitempty"`
}

// Signature renders the function as "name(arg, ...) -> returns".
func (f FuncSpec) Signature() string {
	sig := f.Name + "("
	for i, arg := range f.Args {
		if i > 0 {
			sig += ", "
		}
		sig += arg
	}
	sig += ")"
	if f.Returns != "" {
		sig += " -> " + f.Returns
	}
	return sig
}
