package rand

import "github.com/deepnoodle-ai/risor-rand/object"

// Docs returns documentation for the rand module.
func Docs() []object.FuncSpec {
	return randDocs
}

// ModuleDoc returns the module-level documentation.
func ModuleDoc() string {
	return "Random number generation, sampling and shuffling"
}

var randDocs = []object.FuncSpec{
	{Name: "bool", Doc: "Random bool, true or false with equal probability", Returns: "bool"},
	{Name: "bool", Doc: "Random bool that is true with probability p in [0, 1]", Args: []string{"p"}, Returns: "bool", Example: "rand.bool(0.25)"},
	{Name: "int", Doc: "Random integer over the full int range", Returns: "int"},
	{Name: "int", Doc: "Random int in [start, end)", Args: []string{"start", "end"}, Returns: "int", Example: "rand.int(0, 100)"},
	{Name: "int", Doc: "Random int in [start, end] when inclusive is true", Args: []string{"start", "end", "inclusive"}, Returns: "int", Example: "rand.int(1, 6, true)"},
	{Name: "randint", Doc: "Random int in [a, b] inclusive", Args: []string{"a", "b"}, Returns: "int"},
	{Name: "float", Doc: "Random float in [0.0, 1.0)", Returns: "float"},
	{Name: "float", Doc: "Random float in [start, end)", Args: []string{"start", "end"}, Returns: "float"},
	{Name: "uniform", Doc: "Random float in [a, b], bounds in either order", Args: []string{"a", "b"}, Returns: "float"},
	{Name: "normal", Doc: "Random float from the standard normal distribution", Returns: "float"},
	{Name: "normal", Doc: "Random float from a normal distribution with mean mu and standard deviation sigma", Args: []string{"mu", "sigma"}, Returns: "float", Example: "rand.normal(100, 15)"},
	{Name: "exponential", Doc: "Random float from an exponential distribution with rate lambda, 1 if omitted", Args: []string{"lambda?"}, Returns: "float"},
	{Name: "decimal", Doc: "Random decimal string in [0, 1)", Returns: "string"},
	{Name: "decimal", Doc: "Random decimal string in [start, end) with places digits after the point, 0 to 28 (28 if omitted)", Args: []string{"start", "end", "places?"}, Returns: "string", Example: `rand.decimal("1.00", "2.00", 2)`},
	{Name: "sample", Doc: "Random element from list, nil if the list is empty", Args: []string{"list"}, Returns: "any"},
	{Name: "sample", Doc: "Random k elements from list without replacement, in random order", Args: []string{"list", "k"}, Returns: "list", Example: "rand.sample([1, 2, 3, 4], 2)"},
	{Name: "shuffle", Doc: "Shuffle list in place", Args: []string{"list"}, Returns: "list"},
	{Name: "bytes", Doc: "Random bytes", Args: []string{"n"}, Returns: "list"},
	{Name: "uuid", Doc: "Random version 4 UUID", Returns: "string"},
}
