package object

import (
	"bytes"
	"encoding/json"
	"strings"
)

// List of objects. The slice returned by Value is shared with the list, so
// builtins may reorder it in place.
type List struct {
	items []Object
}

func (ls *List) GetAttr(name string) (Object, bool) {
	return nil, false
}

func (ls *List) Type() Type {
	return LIST
}

func (ls *List) Value() []Object {
	return ls.items
}

func (ls *List) Len() int {
	return len(ls.items)
}

func (ls *List) Inspect() string {
	var out bytes.Buffer
	items := make([]string, 0, len(ls.items))
	for _, item := range ls.items {
		items = append(items, item.Inspect())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(items, ", "))
	out.WriteString("]")
	return out.String()
}

func (ls *List) String() string {
	return ls.Inspect()
}

func (ls *List) Interface() interface{} {
	items := make([]interface{}, 0, len(ls.items))
	for _, item := range ls.items {
		items = append(items, item.Interface())
	}
	return items
}

func (ls *List) Equals(other Object) bool {
	otherList, ok := other.(*List)
	if !ok || len(ls.items) != len(otherList.items) {
		return false
	}
	for i, v := range ls.items {
		if !v.Equals(otherList.items[i]) {
			return false
		}
	}
	return true
}

func (ls *List) IsTruthy() bool {
	return len(ls.items) > 0
}

func (ls *List) MarshalJSON() ([]byte, error) {
	if ls.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(ls.items)
}

func NewList(items []Object) *List {
	return &List{items: items}
}
