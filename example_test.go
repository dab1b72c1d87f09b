package statgo_test

import (
	"os"

	"github.com/hupe1980/statgo"
	"github.com/hupe1980/statgo/emit"
)

func Example() {
	reg := statgo.New()

	cache := reg.NewGroup("cache")
	hits := statgo.NewCounter[uint64]("hits", cache)
	hist := statgo.NewArray[uint64]("latency_hist", cache, 4)

	run := reg.NewArena()
	cache.SetTargetArena(run)

	for i := 0; i < 3; i++ {
		hits.Inc()
	}
	hist.AddAt(2, 7)

	_ = reg.Dump(emit.Text(os.Stdout), run)
	// Output:
	// cache:
	//   hits: 3
	//   latency_hist: 0 0 7 0
}

func Example_merge() {
	reg := statgo.New()
	cpu := reg.NewGroup("cpu")
	cycles := statgo.NewCounter[uint64]("cycles", cpu)

	// One arena per simulated core, plus one for whole-run totals.
	core0 := reg.NewArena()
	core1 := reg.NewArena()
	total := reg.NewArena()

	cycles.AddIn(core0, 120)
	cycles.AddIn(core1, 80)

	reg.Merge(total, core0)
	reg.Merge(total, core1)

	_ = reg.Dump(emit.Text(os.Stdout), total)
	// Output:
	// cpu:
	//   cycles: 200
}
