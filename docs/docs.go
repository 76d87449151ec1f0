// Package docs renders reference documentation for builtin modules.
package docs

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/deepnoodle-ai/risor-rand/object"
)

// Module is the documentation of one builtin module.
type Module struct {
	Name      string            `json:"name"`
	Doc       string            `json:"doc"`
	Functions []object.FuncSpec `json:"functions"`
}

// JSON returns the module documentation as indented JSON.
func (m Module) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// WriteMarkdown writes the module documentation as Markdown. Overloads, i.e.
// consecutive specs sharing a name, are grouped under a single "## name"
// header with one "### signature" entry per overload.
func (m Module) WriteMarkdown(w io.Writer) error {
	mw := &markdownWriter{w: w}
	mw.printf("# `%s`\n\n", m.Name)
	if m.Doc != "" {
		mw.printf("%s\n\n", m.Doc)
	}
	funcs := m.Functions
	for i, fn := range funcs {
		overloaded := (i > 0 && funcs[i-1].Name == fn.Name) ||
			(i+1 < len(funcs) && funcs[i+1].Name == fn.Name)
		if overloaded && (i == 0 || funcs[i-1].Name != fn.Name) {
			mw.printf("## `%s`\n\n", fn.Name)
		}
		if overloaded {
			mw.printf("### `%s`\n\n", m.qualify(fn))
		} else {
			mw.printf("## `%s`\n\n", m.qualify(fn))
		}
		if fn.Doc != "" {
			mw.printf("%s\n\n", fn.Doc)
		}
		if fn.Example != "" {
			mw.printf("```risor\n%s\n```\n\n", strings.TrimSpace(fn.Example))
		}
	}
	return mw.err
}

func (m Module) qualify(fn object.FuncSpec) string {
	if m.Name == "" {
		return fn.Signature()
	}
	return m.Name + "." + fn.Signature()
}

// markdownWriter remembers the first write error so callers can check once.
type markdownWriter struct {
	w   io.Writer
	err error
}

func (mw *markdownWriter) printf(format string, args ...any) {
	if mw.err != nil {
		return
	}
	_, mw.err = fmt.Fprintf(mw.w, format, args...)
}
