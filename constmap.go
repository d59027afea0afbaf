package constmap

import (
	"github.com/kode4food/constmap/table"

	tableImpl "github.com/kode4food/constmap/internal/table"
)

// New instantiates a new immutable Table from an ordered set of Entries
func New[Key comparable, Value any](
	entries ...table.Entry[Key, Value],
) table.Table[Key, Value] {
	return tableImpl.Make[Key, Value](entries...)
}

// Pair makes an Entry out of the provided key and value
func Pair[Key comparable, Value any](k Key, v Value) table.Entry[Key, Value] {
	return table.Entry[Key, Value]{
		Key:   k,
		Value: v,
	}
}
