package statgo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statgo"
)

func TestArrayIndexing(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	h := statgo.NewArray[uint64]("hist", g, 8)
	g.SetTargetArena(reg.NewArena())

	for i := 0; i < h.Len(); i++ {
		h.SetAt(i, uint64(i))
	}

	want := []uint64{0, 1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, want, h.Values())
	for i := 0; i < h.Len(); i++ {
		assert.Equal(t, uint64(i), h.At(i))
	}
}

func TestArrayArithmetic(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	h := statgo.NewArray[int64]("h", g, 3)
	g.SetTargetArena(reg.NewArena())

	assert.Equal(t, int64(1), h.IncAt(0))
	assert.Equal(t, int64(7), h.AddAt(2, 7))
	assert.Equal(t, []int64{1, 0, 7}, h.Values())
}

func TestArrayExplicitArena(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	h := statgo.NewArray[uint64]("h", g, 4)

	mine := reg.NewArena()
	other := reg.NewArena()
	h.SetTarget(mine)

	h.AddAtIn(other, 1, 5)
	h.IncAtIn(other, 1)
	h.SetAtIn(other, 3, 2)

	assert.Equal(t, []uint64{0, 0, 0, 0}, h.Values())
	assert.Equal(t, []uint64{0, 6, 0, 2}, h.ValuesIn(other))
	assert.Equal(t, uint64(6), h.AtIn(other, 1))
}

func TestArrayOutOfRange(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	h := statgo.NewArray[uint64]("hist", g, 4)
	g.SetTargetArena(reg.NewArena())

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)

		var ie *statgo.IndexError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, "hist", ie.Counter)
		assert.Equal(t, 4, ie.Index)
		assert.Equal(t, 4, ie.Len)
	}()
	h.At(4)
}

func TestArrayNoTarget(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	h := statgo.NewArray[uint64]("h", g, 2)

	assert.Panics(t, func() { h.IncAt(0) })
}

func TestArrayLengthValidation(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")

	assert.Panics(t, func() { statgo.NewArray[uint64]("bad", g, 0) })
	assert.Panics(t, func() { statgo.NewArray[uint64]("bad", g, -1) })
}

func TestArrayMerge(t *testing.T) {
	reg := statgo.New()
	g := reg.NewGroup("g")
	h := statgo.NewArray[uint64]("h", g, 4)

	x := reg.NewArena()
	y := reg.NewArena()
	for i := 0; i < h.Len(); i++ {
		h.SetAtIn(x, i, uint64(i))
		h.SetAtIn(y, i, 10)
	}

	reg.Merge(x, y)

	assert.Equal(t, []uint64{10, 11, 12, 13}, h.ValuesIn(x))
	assert.Equal(t, []uint64{10, 10, 10, 10}, h.ValuesIn(y), "merge source must be unchanged")
}
