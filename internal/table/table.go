package table

import (
	"github.com/kode4food/constmap/table"
)

// Table is the internal implementation of a table.Table
type Table[Key comparable, Value any] struct {
	entries []table.Entry[Key, Value]
}

// Make instantiates a new immutable Table from an ordered set of Entries.
// The Entries are copied, and their order is preserved exactly as supplied
func Make[Key comparable, Value any](
	entries ...table.Entry[Key, Value],
) table.Table[Key, Value] {
	copied := make([]table.Entry[Key, Value], len(entries))
	copy(copied, entries)
	return &Table[Key, Value]{
		entries: copied,
	}
}

func (t *Table[Key, Value]) Lookup(k Key) (Value, bool) {
	for _, e := range t.entries {
		if e.Key == k {
			return e.Value, true
		}
	}
	var zero Value
	return zero, false
}

func (t *Table[_, _]) Len() int {
	return len(t.entries)
}

func (t *Table[Key, Value]) At(i int) table.Entry[Key, Value] {
	return t.entries[i]
}

func (t *Table[Key, Value]) Entries() []table.Entry[Key, Value] {
	res := make([]table.Entry[Key, Value], len(t.entries))
	copy(res, t.entries)
	return res
}

func (t *Table[Key, _]) Keys() []Key {
	res := make([]Key, len(t.entries))
	for i, e := range t.entries {
		res[i] = e.Key
	}
	return res
}
