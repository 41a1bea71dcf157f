// Package symtable implements Akarin's three symbol tables — constants,
// functions, and (nested, parent-chained) variables — per spec.md §3.
// ConstTable and FuncTable are backed by github.com/dolthub/swiss maps, the
// same hash-set library the teacher's lang/machine uses for its runtime Map
// value type, redirected here to back the compiler's own symbol tables
// instead (see SPEC_FULL.md §3 and DESIGN.md).
package symtable

import "github.com/dolthub/swiss"

// ConstTable is an unordered set of name -> int constants. Redefinition is
// rejected (spec.md §3).
type ConstTable struct {
	m *swiss.Map[string, int64]
}

// NewConstTable returns an empty constant table.
func NewConstTable() *ConstTable {
	return &ConstTable{m: swiss.NewMap[string, int64](8)}
}

// Define adds name -> value. It returns false if name is already defined
// (the caller should report "constant redefined").
func (t *ConstTable) Define(name string, value int64) bool {
	if _, ok := t.m.Get(name); ok {
		return false
	}
	t.m.Put(name, value)
	return true
}

// Lookup returns the value bound to name, if any.
func (t *ConstTable) Lookup(name string) (int64, bool) {
	return t.m.Get(name)
}
