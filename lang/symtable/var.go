package symtable

import "github.com/dolthub/swiss"

// VarEntry is one binding in a VarTable: a name, its heap/parameter offset,
// and whether it was declared in a function scope (spec.md §3: "is_local is
// true iff parent != nil ... interpreted as 'function parameter; readonly'").
type VarEntry struct {
	Name    string
	Offset  int
	IsLocal bool
}

// VarTable is an ordered, parent-chained scope of variable bindings. The
// root table is the global scope; each function body gets a child table
// (spec.md §3). Order matters (offset allocation is append-only), so the
// canonical storage is a slice; a swiss-map index gives O(1) name lookup
// within a single scope, mirroring the teacher's resolver.Binding concept
// collapsed to Akarin's two-tier global/parameter model (see DESIGN.md).
type VarTable struct {
	parent *VarTable
	order  []*VarEntry
	index  *swiss.Map[string, *VarEntry]
	offset int
}

// NewVarTable returns a new scope chained to parent (nil for the global
// scope).
func NewVarTable(parent *VarTable) *VarTable {
	return &VarTable{
		parent: parent,
		index:  swiss.NewMap[string, *VarEntry](8),
	}
}

// Parent returns the enclosing scope, or nil for the global scope.
func (t *VarTable) Parent() *VarTable { return t.parent }

// IsLocal reports whether this table is a function scope (has a parent).
func (t *VarTable) IsLocal() bool { return t.parent != nil }

// AddScalar declares a size-1 variable (a parameter, or a plain global) and
// returns its entry. Allocation advances the table's offset counter by 1.
func (t *VarTable) AddScalar(name string) *VarEntry {
	e := &VarEntry{Name: name, Offset: t.offset, IsLocal: t.IsLocal()}
	t.offset++
	t.order = append(t.order, e)
	t.index.Put(name, e)
	return e
}

// AddArray declares an array of the given capacity and returns its entry
// (the entry's Offset is the array's base cell). Allocation advances the
// table's offset counter by capacity (spec.md §3).
func (t *VarTable) AddArray(name string, capacity int64) *VarEntry {
	e := &VarEntry{Name: name, Offset: t.offset, IsLocal: t.IsLocal()}
	t.offset += int(capacity)
	t.order = append(t.order, e)
	t.index.Put(name, e)
	return e
}

// LookupLocal looks up name in this scope only, without chaining to parent.
func (t *VarTable) LookupLocal(name string) (*VarEntry, bool) {
	return t.index.Get(name)
}

// Lookup looks up name in this scope, falling through to enclosing scopes.
func (t *VarTable) Lookup(name string) (*VarEntry, bool) {
	for s := t; s != nil; s = s.parent {
		if e, ok := s.index.Get(name); ok {
			return e, true
		}
	}
	return nil, false
}
