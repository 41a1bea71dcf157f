package symtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuukiARIA/akarin/lang/label"
	"github.com/YuukiARIA/akarin/lang/symtable"
)

func TestConstTableRejectsRedefinition(t *testing.T) {
	ct := symtable.NewConstTable()
	require.True(t, ct.Define("K", 3))
	assert.False(t, ct.Define("K", 4))

	v, ok := ct.Lookup("K")
	require.True(t, ok)
	assert.Equal(t, int64(3), v)
}

func TestFuncTableForwardReference(t *testing.T) {
	var labels label.Table
	ft := symtable.NewFuncTable()

	e := ft.LookupOrCreate("add", &labels)
	assert.False(t, e.Resolved)

	same, ok := ft.Lookup("add")
	require.True(t, ok)
	assert.Same(t, e, same)

	e.MarkResolved()
	again := ft.LookupOrCreate("add", &labels)
	assert.True(t, again.Resolved)
	assert.Same(t, e, again)
}

func TestVarTableOffsetsAndScopes(t *testing.T) {
	global := symtable.NewVarTable(nil)
	assert.False(t, global.IsLocal())

	x := global.AddScalar("x")
	assert.Equal(t, 0, x.Offset)
	assert.False(t, x.IsLocal)

	arr := global.AddArray("buf", 4)
	assert.Equal(t, 1, arr.Offset)

	after := global.AddScalar("y")
	assert.Equal(t, 5, after.Offset)

	fn := symtable.NewVarTable(global)
	assert.True(t, fn.IsLocal())
	a := fn.AddScalar("a")
	assert.Equal(t, 0, a.Offset)
	assert.True(t, a.IsLocal)

	// chained lookup: a function scope can see globals through the parent.
	found, ok := fn.Lookup("x")
	require.True(t, ok)
	assert.Same(t, x, found)

	// but the global scope never sees the function's locals.
	_, ok = global.Lookup("a")
	assert.False(t, ok)
}
