package symtable

import (
	"github.com/dolthub/swiss"

	"github.com/YuukiARIA/akarin/lang/label"
)

// FuncEntry records a function's allocated label and whether its definition
// has been seen yet. A reference to a not-yet-defined function creates an
// unresolved entry (spec.md §3); the definition marks it resolved.
type FuncEntry struct {
	Name     string
	Label    *label.Label
	Resolved bool
}

// FuncTable is an unordered set of name -> FuncEntry.
type FuncTable struct {
	m *swiss.Map[string, *FuncEntry]
}

// NewFuncTable returns an empty function table.
func NewFuncTable() *FuncTable {
	return &FuncTable{m: swiss.NewMap[string, *FuncEntry](8)}
}

// Lookup returns the entry for name, if any.
func (t *FuncTable) Lookup(name string) (*FuncEntry, bool) {
	return t.m.Get(name)
}

// LookupOrCreate returns the existing entry for name, allocating a fresh
// unresolved one (with a new label from labels) if none exists yet — this is
// how a forward-referenced call site creates its target's entry.
func (t *FuncTable) LookupOrCreate(name string, labels *label.Table) *FuncEntry {
	if e, ok := t.m.Get(name); ok {
		return e
	}
	e := &FuncEntry{Name: name, Label: labels.Alloc()}
	t.m.Put(name, e)
	return e
}

// MarkResolved marks e as resolved (its definition has been generated).
func (e *FuncEntry) MarkResolved() { e.Resolved = true }
