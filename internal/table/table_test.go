package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/constmap"
	"github.com/kode4food/constmap/table"
)

func makeFruits() table.Table[rune, string] {
	return constmap.New(
		constmap.Pair('a', "apple"),
		constmap.Pair('b', "banana"),
		constmap.Pair('c', "clementine"),
		constmap.Pair('d', "durian"),
	)
}

func TestLookup(t *testing.T) {
	as := assert.New(t)

	tbl := makeFruits()
	v, ok := tbl.Lookup('b')
	as.True(ok)
	as.Equal("banana", v)

	v, ok = tbl.Lookup('x')
	as.False(ok)
	as.Equal("", v)
}

func TestContainment(t *testing.T) {
	as := assert.New(t)

	tbl := makeFruits()
	for _, e := range tbl.Entries() {
		v, ok := tbl.Lookup(e.Key)
		as.True(ok)
		as.Equal(e.Value, v)
	}
}

func TestEmptyTable(t *testing.T) {
	as := assert.New(t)

	tbl := constmap.New[string, int]()
	as.Equal(0, tbl.Len())
	as.Empty(tbl.Entries())
	as.Empty(tbl.Keys())

	v, ok := tbl.Lookup("anything")
	as.False(ok)
	as.Equal(0, v)
}

func TestFirstMatchWins(t *testing.T) {
	as := assert.New(t)

	tbl := constmap.New(
		constmap.Pair("x", 1),
		constmap.Pair("x", 2),
	)
	as.Equal(2, tbl.Len())

	v, ok := tbl.Lookup("x")
	as.True(ok)
	as.Equal(1, v)
	as.Equal([]string{"x", "x"}, tbl.Keys())
}

func TestOrderPreserved(t *testing.T) {
	as := assert.New(t)

	tbl := makeFruits()
	as.Equal(4, tbl.Len())
	as.Equal([]rune{'a', 'b', 'c', 'd'}, tbl.Keys())
	as.Equal("banana", tbl.At(1).Value)
	as.Panics(func() {
		tbl.At(4)
	})
}

func TestImmutability(t *testing.T) {
	as := assert.New(t)

	entries := []table.Entry[string, int]{
		{Key: "a", Value: 1},
	}
	tbl := constmap.New(entries...)

	// neither the source slice nor accessor results alias the table
	entries[0].Value = 99
	out := tbl.Entries()
	out[0].Value = 42

	v, ok := tbl.Lookup("a")
	as.True(ok)
	as.Equal(1, v)
}

func TestDeterminism(t *testing.T) {
	as := assert.New(t)

	tbl := makeFruits()
	for i := 0; i < 100; i++ {
		v, ok := tbl.Lookup('c')
		as.True(ok)
		as.Equal("clementine", v)
	}
}
