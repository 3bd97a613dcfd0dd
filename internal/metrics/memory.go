package metrics

import (
	"runtime"
	"sync/atomic"
	"time"
)

// MemorySnapshot is the subset of runtime.MemStats shown in reports and the
// dashboard.
type MemorySnapshot struct {
	HeapAlloc    uint64
	HeapSys      uint64
	Sys          uint64
	TotalAlloc   uint64
	NumGC        uint32
	PauseTotalNs uint64
}

func snapshotFrom(ms *runtime.MemStats) MemorySnapshot {
	return MemorySnapshot{
		HeapAlloc:    ms.HeapAlloc,
		HeapSys:      ms.HeapSys,
		Sys:          ms.Sys,
		TotalAlloc:   ms.TotalAlloc,
		NumGC:        ms.NumGC,
		PauseTotalNs: ms.PauseTotalNs,
	}
}

// MemoryCollector samples runtime memory and remembers the largest live heap
// it has observed.
type MemoryCollector struct {
	peakHeap atomic.Uint64
}

func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot calls runtime.ReadMemStats, which stops the world briefly; keep
// it off hot paths.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	snap := snapshotFrom(&ms)
	for {
		peak := mc.peakHeap.Load()
		if snap.HeapAlloc <= peak || mc.peakHeap.CompareAndSwap(peak, snap.HeapAlloc) {
			break
		}
	}
	return snap
}

// PeakHeap is the highest HeapAlloc seen by Snapshot so far.
func (mc *MemoryCollector) PeakHeap() uint64 {
	return mc.peakHeap.Load()
}

// AllocatedSince returns the bytes allocated between two snapshots, which is
// how the verbose report attributes scratch space (FFT buffers, digit
// slices) to a single evaluation.
func (s MemorySnapshot) AllocatedSince(before MemorySnapshot) uint64 {
	if s.TotalAlloc < before.TotalAlloc {
		return 0
	}
	return s.TotalAlloc - before.TotalAlloc
}

func (s MemorySnapshot) GCPause() time.Duration {
	return time.Duration(s.PauseTotalNs)
}
