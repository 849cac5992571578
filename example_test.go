package easyspot_test

import (
	"fmt"
	"io"

	"github.com/hupe1980/easyspot"
)

// Example_block demonstrates allocating a block and viewing it as a typed value.
func Example_block() {
	block := easyspot.Allocate(4)
	defer block.Drop()

	ref := easyspot.AsRef[int32](block)
	ref.Store(123)

	fmt.Println(block.Size(), ref.Load())
	// Output: 4 123
}

// Example_seq demonstrates a fixed-capacity sequence.
func Example_seq() {
	seq := easyspot.AllocateSeq[int32](10)
	defer seq.Drop()

	for i := range seq.Capacity() {
		seq.Set(i, int32(i*i))
	}
	*seq.At(0) = -1

	fmt.Println(seq.Capacity(), seq.Get(0), seq.Get(9))
	// Output: 10 -1 81
}

// Example_metrics demonstrates collecting allocation metrics.
func Example_metrics() {
	mc := &easyspot.BasicMetricsCollector{}
	easyspot.Configure(easyspot.WithMetricsCollector(mc))
	defer easyspot.Configure()

	a := easyspot.Allocate(1024)
	b := easyspot.AllocateSeq[uint64](128)
	a.Drop()
	b.Drop()

	fmt.Println(mc.GetStats())
	// Output: Stats{allocs: 2 (2.0 KiB), drops: 2 (2.0 KiB), live: 0 (0 B), peak: 2.0 KiB}
}

// Example_memoryLimit demonstrates capping the memory held by live blocks.
func Example_memoryLimit() {
	easyspot.Configure(easyspot.WithMemoryLimit(4096))
	defer easyspot.Configure()

	seq := easyspot.AllocateSeq[byte](1000)
	budget := easyspot.Budget()
	fmt.Println(budget.Used, budget.Limit)
	seq.Drop()

	fmt.Println(easyspot.Budget().Used)
	// Output:
	// 1008 4096
	// 0
}

// Example_reportLeaks demonstrates checking for undropped blocks at exit.
func Example_reportLeaks() {
	block := easyspot.Allocate(16)
	block.Drop()

	// Real programs report to os.Stderr right before exiting.
	easyspot.ReportLeaks(io.Discard)
	fmt.Println("done")
	// Output: done
}
