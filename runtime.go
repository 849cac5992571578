package easyspot

import (
	"github.com/hupe1980/easyspot/internal/backing"
	"github.com/hupe1980/easyspot/internal/diag"
	"github.com/hupe1980/easyspot/internal/registry"
	"github.com/hupe1980/easyspot/internal/resource"
)

// runtimeState is the process-wide configuration. It is replaced as a
// whole by Configure and read without synchronization.
type runtimeState struct {
	backing Backing
	source  backing.Source
	budget  *resource.Controller // nil without a memory limit
	logger  *Logger
	metrics MetricsCollector
}

var (
	state = newRuntimeState(defaultOptions())

	// goHeap is shared by every configuration so Go-heap blocks stay pinned
	// across Configure calls.
	goHeap = backing.NewGoHeap()

	// live holds one record per block allocated and not yet dropped. It is
	// only read or written when Debug is set.
	live = registry.New()
)

func newRuntimeState(o options) *runtimeState {
	var src backing.Source
	switch o.backing {
	case BackingGoHeap:
		src = goHeap
	default:
		src = backing.OffHeap{}
	}

	s := &runtimeState{
		backing: o.backing,
		source:  src,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
	if o.memoryLimit > 0 {
		s.budget = resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit})
		s.source = backing.NewLimited(src, s.budget)
	}
	return s
}

func apply(o options) {
	state = newRuntimeState(o)
	diag.SetOutput(o.diagOutput)
}

// fault reports f and terminates the process. It does not return.
func fault(f *Fault) {
	state.logger.LogFault(f)
	state.metrics.RecordFault(f.Kind)
	diag.Panic(f.Error())
}

// checkUse faults unless addr lies inside a live block. Callers guard it
// with Debug so release builds drop the call entirely.
func checkUse(addr uintptr) {
	if !live.ContainsRange(addr) {
		fault(useAfterFree(addr))
	}
}

// BudgetStats reports the memory budget configured with WithMemoryLimit.
type BudgetStats struct {
	Used  int64 // bytes held by live blocks, headers included
	Peak  int64
	Limit int64 // 0 if no limit is configured
}

// Budget returns the state of the current memory budget. Without a limit
// all fields are zero.
func Budget() BudgetStats {
	return BudgetStats{
		Used:  state.budget.MemoryUsage(),
		Peak:  state.budget.PeakMemoryUsage(),
		Limit: state.budget.MemoryLimit(),
	}
}
