package statgo_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statgo"
	"github.com/hupe1980/statgo/emit"
)

// scenario builds the cache/hits/latency_hist registry used across the dump
// tests: hits incremented 3 times, 7 added to latency bucket 2.
func scenario(t *testing.T) (*statgo.Registry, *statgo.Arena) {
	t.Helper()

	reg := statgo.New()
	cache := reg.NewGroup("cache")
	hits := statgo.NewCounter[uint64]("hits", cache)
	hist := statgo.NewArray[uint64]("latency_hist", cache, 4)

	a := reg.NewArena()
	cache.SetTargetArena(a)

	hits.Inc()
	hits.Inc()
	hits.Inc()
	hist.AddAt(2, 7)

	return reg, a
}

func TestScenarioTextDump(t *testing.T) {
	reg, a := scenario(t)

	var buf bytes.Buffer
	require.NoError(t, reg.Dump(emit.Text(&buf), a))

	want := "cache:\n" +
		"  hits: 3\n" +
		"  latency_hist: 0 0 7 0\n"
	assert.Equal(t, want, buf.String())
}

func TestScenarioYAMLDump(t *testing.T) {
	reg, a := scenario(t)

	var buf bytes.Buffer
	require.NoError(t, reg.Dump(emit.YAML(&buf), a))

	want := "cache:\n" +
		"  hits: 3\n" +
		"  latency_hist: [0, 0, 7, 0]\n"
	assert.Equal(t, want, buf.String())
}

func TestDumpReadsSuppliedArena(t *testing.T) {
	reg, a := scenario(t)

	// Dump always reads the supplied arena, independent of target state.
	other := reg.NewArena()
	reg.Root().SetTargetArena(other)

	var buf bytes.Buffer
	require.NoError(t, reg.Dump(emit.Text(&buf), a))
	assert.Contains(t, buf.String(), "hits: 3")

	buf.Reset()
	require.NoError(t, reg.Dump(emit.Text(&buf), other))
	assert.Contains(t, buf.String(), "hits: 0")
}

func TestDumpNestedYAML(t *testing.T) {
	reg := statgo.New()
	cpu := reg.NewGroup("cpu")
	statgo.NewCounter[uint64]("cycles", cpu)
	l1 := statgo.NewGroup("l1", cpu)
	misses := statgo.NewCounter[uint64]("misses", l1)

	a := reg.NewArena()
	misses.SetIn(a, 9)

	var buf bytes.Buffer
	require.NoError(t, reg.Dump(emit.YAML(&buf), a))

	want := "cpu:\n" +
		"  cycles: 0\n" +
		"  l1:\n" +
		"    misses: 9\n"
	assert.Equal(t, want, buf.String())
}

func TestEmitterByName(t *testing.T) {
	var buf bytes.Buffer

	for _, name := range []string{"text", "yaml"} {
		e, ok := emit.ByName(name, &buf)
		require.True(t, ok)
		assert.Equal(t, name, e.Name())
	}

	_, ok := emit.ByName("xml", &buf)
	assert.False(t, ok)
}
