package table

import (
	"errors"
	"fmt"
)

type (
	// Entry is an ordered key/value pair occupying one slot of a Table.
	// Entries have no identity beyond their position
	Entry[Key comparable, Value any] struct {
		Key   Key
		Value Value
	}

	// Table is a fixed, ordered sequence of Entries. It is built once,
	// never mutated afterward, and is therefore safe for any number of
	// concurrent readers without locking. Keys are not required to be
	// unique: under duplicates the Entry with the lowest position is
	// authoritative for Lookup, while later duplicates still occupy slots
	// and count toward Len
	Table[Key comparable, Value any] interface {
		// Lookup scans the Table from the first Entry and returns the
		// value of the first Entry whose key equals the one provided.
		// Absence is an expected outcome, reported as a false ok rather
		// than an error
		Lookup(Key) (Value, bool)

		// Len returns the number of Entries, fixed at construction
		Len() int

		// At returns the Entry at the provided position, panicking when
		// the position is out of range the way a slice index would
		At(int) Entry[Key, Value]

		// Entries returns a copy of the Entries in declaration order
		Entries() []Entry[Key, Value]

		// Keys returns a copy of the keys in declaration order,
		// duplicates included
		Keys() []Key
	}
)

var (
	ErrKeyNotFound = errors.New("key not found in table")
)

// MustLookup returns the value for the first Entry matching the provided
// key, panicking with a wrapped ErrKeyNotFound when no Entry matches.
// Escalating absence is the caller's choice; Lookup itself never fails
func MustLookup[Key comparable, Value any](t Table[Key, Value], k Key) Value {
	if v, ok := t.Lookup(k); ok {
		return v
	}
	panic(fmt.Errorf("%w: %v", ErrKeyNotFound, k))
}
