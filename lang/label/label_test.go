package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YuukiARIA/akarin/lang/label"
)

func TestAllocIsUnique(t *testing.T) {
	var t1 label.Table
	a := t1.Alloc()
	b := t1.Alloc()
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, t1.Count())
}

func TestUnifyResolvesToSameID(t *testing.T) {
	var t1 label.Table
	a := t1.Alloc()
	b := t1.Alloc()
	c := t1.Alloc()

	assert.NotEqual(t, label.ResolvedID(a), label.ResolvedID(b))

	t1.Unify(a, b)
	assert.Equal(t, label.ResolvedID(a), label.ResolvedID(b))
	assert.NotEqual(t, label.ResolvedID(a), label.ResolvedID(c))

	// chained unification: c joins the (a,b) cluster via b.
	t1.Unify(b, c)
	assert.Equal(t, label.ResolvedID(a), label.ResolvedID(c))
}

func TestUnifySameClusterIsNoop(t *testing.T) {
	var t1 label.Table
	a := t1.Alloc()
	b := t1.Alloc()
	t1.Unify(a, b)
	t1.Unify(b, a)
	assert.Equal(t, label.ResolvedID(a), label.ResolvedID(b))
}
