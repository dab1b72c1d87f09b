package statgo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statgo"
)

func TestCounterArithmetic(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	c := statgo.NewCounter[uint64]("c", g)
	g.SetTargetArena(reg.NewArena())

	for i := 0; i < 10; i++ {
		c.Inc()
	}
	assert.Equal(t, uint64(10), c.Value())

	// Add then Sub of the same value is a no-op.
	c.Add(37)
	c.Sub(37)
	assert.Equal(t, uint64(10), c.Value())

	assert.Equal(t, uint64(9), c.Dec())
	assert.Equal(t, uint64(18), c.Mul(2))
	assert.Equal(t, uint64(6), c.Div(3))
}

func TestCounterFloat(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	c := statgo.NewCounter[float64]("ipc", g)
	g.SetTargetArena(reg.NewArena())

	c.Set(1.5)
	c.Mul(2)
	assert.InDelta(t, 3.0, c.Value(), 1e-9)
}

func TestCounterNoTarget(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	c := statgo.NewCounter[uint64]("orphan", g)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)

		var nt *statgo.NoTargetError
		require.True(t, errors.As(err, &nt))
		assert.Equal(t, "orphan", nt.Counter)
	}()
	c.Inc()
}

func TestCounterExplicitArena(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	c := statgo.NewCounter[uint64]("c", g)

	mine := reg.NewArena()
	other := reg.NewArena()
	c.SetTarget(mine)
	c.Add(5)

	// Updating another context's arena must not move the default target.
	c.IncIn(other)
	c.AddIn(other, 2)
	assert.Same(t, mine, c.Target())
	assert.Equal(t, uint64(5), c.Value())
	assert.Equal(t, uint64(3), c.ValueIn(other))
}

func TestCounterTargetIsolation(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	c := statgo.NewCounter[uint64]("c", g)

	x := reg.NewArena()
	y := reg.NewArena()

	c.SetTarget(x)
	c.Add(11)

	c.SetTarget(y)
	c.Add(7)

	// Arithmetic against Y never touches X's storage.
	assert.Equal(t, uint64(11), c.ValueIn(x))
	assert.Equal(t, uint64(7), c.ValueIn(y))
}

func TestCounterCounterOperands(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	a := statgo.NewCounter[int64]("a", g)
	b := statgo.NewCounter[int64]("b", g)
	g.SetTargetArena(reg.NewArena())

	a.Set(10)
	b.Set(4)

	assert.Equal(t, int64(14), a.AddCounter(b))
	assert.Equal(t, int64(10), a.SubCounter(b))
	assert.Equal(t, int64(40), a.MulCounter(b))
	assert.Equal(t, int64(10), a.DivCounter(b))
}

func TestCounterSetIn(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	c := statgo.NewCounter[uint32]("c", g)

	x := reg.NewArena()
	y := reg.NewArena()
	c.SetTarget(x)

	c.SetIn(y, 99)
	assert.Equal(t, uint32(0), c.Value())
	assert.Equal(t, uint32(99), c.ValueIn(y))
}

func TestCounterInheritsParentTarget(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	a := reg.NewArena()
	g.SetTargetArena(a)

	// Declared after the parent's target was set: captures it.
	c := statgo.NewCounter[uint64]("late", g)
	assert.Same(t, a, c.Target())
	assert.Equal(t, uint64(1), c.Inc())
}
