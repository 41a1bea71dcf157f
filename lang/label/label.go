// Package label implements Akarin's label table: a flat arena of jump
// targets with a union-find fusion operation (spec.md §4.3), grounded on
// original_source/include/label.h's alloc/get/unify/resolved_id operation
// set. No pack repo models jump targets this way (the teacher linearizes a
// CFG of basic blocks instead, see DESIGN.md), so this one is built directly
// from the original source's interface rather than adapted from a Go
// example.
package label

// Label is a symbolic jump target. Instructions hold non-owning references
// to Labels allocated from a Table; the Table is the sole owner (spec.md
// §9: "Labels are owned by the label table").
type Label struct {
	id     int
	parent *Label
}

// ID returns the label's own allocation-order id (not its fused root id).
func (l *Label) ID() int { return l.id }

// Table is an arena of Labels supporting allocation and union-find fusion.
type Table struct {
	labels []*Label
}

// Alloc returns a fresh label with a unique id.
func (t *Table) Alloc() *Label {
	l := &Label{id: len(t.labels)}
	t.labels = append(t.labels, l)
	return l
}

// Count returns the number of labels allocated so far.
func (t *Table) Count() int { return len(t.labels) }

// Get returns the label with the given allocation id.
func (t *Table) Get(id int) *Label { return t.labels[id] }

// root walks l's parent chain to the representative label of its fused
// cluster. Path is not compressed (spec.md §4.3: "standard union-find; path
// need not be compressed").
func root(l *Label) *Label {
	for l.parent != nil {
		l = l.parent
	}
	return l
}

// Unify merges b's cluster into a's: root(b).parent = root(a).
func (t *Table) Unify(a, b *Label) {
	ra, rb := root(a), root(b)
	if ra != rb {
		rb.parent = ra
	}
}

// ResolvedID returns the stable integer id of l's fused cluster, used by
// emitters when serializing label references.
func ResolvedID(l *Label) int { return root(l).id }
