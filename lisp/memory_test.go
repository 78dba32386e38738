package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReleaseAll(t *testing.T) {
	m := NewMemory()
	assert.Equal(t, uint64(0), m.Generation())

	x := m.Int(1)
	lis := m.Cons(x, m.Nil())
	free := Int(2)
	assert.Equal(t, 3, m.Len())

	n := m.ReleaseAll()
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, uint64(1), m.Generation())

	assert.True(t, x.Released())
	assert.True(t, lis.Released())
	assert.Nil(t, lis.Car, "released pairs drop their references")
	assert.False(t, free.Released())
	assert.Equal(t, "<released>", lis.String())

	assert.Equal(t, 0, m.ReleaseAll())
	assert.Equal(t, uint64(2), m.Generation())
}

func TestMemoryTrackRecursive(t *testing.T) {
	m := NewMemory()
	var captured Env
	captured.Put(Atom("y"), List(Int(1)))
	c := &Value{Type: TypeClosure, Closure: &Closure{
		Params:   List(Atom("x")),
		Body:     List(Atom("+"), Atom("x"), Atom("y")),
		Captured: captured,
	}}
	lis := List(Atom("a"), c)
	params := c.Closure.Params
	body := c.Closure.Body
	bound := captured.Front()
	boundValue := bound.Value

	require.Same(t, lis, m.TrackRecursive(lis))
	m.ReleaseAll()

	for _, v := range []*Value{lis, c, params, body, boundValue} {
		assert.True(t, v.Released(), "%p", v)
	}
	assert.True(t, bound.Released())
	assert.Nil(t, bound.Value)

	assert.Nil(t, m.TrackRecursive(nil))
	assert.Equal(t, 0, m.Len())
}

func TestMemoryTrackBindings(t *testing.T) {
	m := NewMemory()
	base := NewEnv()
	base.Put(Atom("z"), Int(0))
	env, err := Bind(List(Atom("x"), Atom("y")), List(Int(1), Int(2)), base)
	require.NoError(t, err)

	m.TrackBindings(env.Front(), base.Front())
	assert.Equal(t, 2, m.Len())
	m.ReleaseAll()
	assert.True(t, env.Front().Released())
	assert.False(t, base.Front().Released())
	assert.Equal(t, "((z . 0))", base.String())
}

func TestMemoryBool(t *testing.T) {
	m := NewMemory()
	assert.True(t, m.Bool(true).IsTruth())
	assert.True(t, m.Bool(false).IsNil())
	assert.Equal(t, 2, m.Len())
}

// An evaluation must leave nothing in the root environment that the arena
// will release.
func TestEvalOwnership(t *testing.T) {
	in, err := New()
	require.NoError(t, err)

	expr := List(Atom("set"), List(Atom(QuoteSymbol), Atom("x")), List(Atom(QuoteSymbol), List(Int(1), Int(2))))
	require.NoError(t, in.Exec(expr))
	assert.True(t, expr.Released())

	x, ok := in.Env.Lookup("x")
	require.True(t, ok)
	assert.False(t, x.Released())
	assert.Equal(t, "(1 2)", x.String())

	v, err := in.Eval(Atom("x"))
	require.NoError(t, err)
	assert.Same(t, x, v)
}

func TestEvalReleased(t *testing.T) {
	in, err := New()
	require.NoError(t, err)

	v := in.Memory.Int(1)
	in.Memory.ReleaseAll()
	_, err = in.Eval(v)
	assert.Equal(t, ErrReleased, KindOf(err))
}

func TestEvalSelf(t *testing.T) {
	in, err := New()
	require.NoError(t, err)

	car, _ := in.Env.Lookup("car")
	fn, err := in.Eval(List(Atom("lambda"), List(Atom("x")), Atom("x")))
	require.NoError(t, err)
	require.Equal(t, TypeClosure, fn.Type)
	for _, v := range []*Value{Int(1), Float(1.5), Truth(), Nil(), car, fn} {
		result, err := in.Eval(v)
		require.NoError(t, err)
		assert.Same(t, v, result, "%v", v)
	}
}
