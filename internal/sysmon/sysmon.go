// Package sysmon samples machine-wide CPU and memory usage for the
// full-screen calculator's metrics panel.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one machine-wide sample. Fields stay zero when the platform
// does not report them.
type Stats struct {
	CPUPercent float64 // 0..100, all cores
	MemPercent float64 // 0..100
	MemUsed    uint64  // bytes
	MemTotal   uint64  // bytes
}

// Sample reads the current usage. CPU usage is measured since the previous
// call, so the first sample of a process may report 0.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = clampPercent(pcts[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		s.MemPercent = clampPercent(vm.UsedPercent)
		s.MemUsed = vm.Used
		s.MemTotal = vm.Total
	}
	return s
}

func clampPercent(p float64) float64 {
	return min(max(p, 0), 100)
}
