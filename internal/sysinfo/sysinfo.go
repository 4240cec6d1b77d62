// Package sysinfo logs a one-line diagnostic host/CPU/memory summary at
// startup. It never affects solver determinism: it is purely informational,
// logged once and then forgotten.
//
// Grounded on github.com/azaryc2s-bch_hmmmtsp's solver/main.go, which
// gathers host.Info/cpu.Info/mem.VirtualMemory via gopsutil to annotate its
// solution output; here the same three calls feed a single vlog line
// instead of a JSON field, since this module's output format (spec §6) has
// no room for solver-environment metadata.
package sysinfo

import (
	"fmt"

	"github.com/giraldeau/vroom/internal/vlog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// LogStartupSummary queries host, CPU, and memory info and writes a single
// LevelDebug line. Failures from any individual gopsutil call are logged
// and otherwise ignored: diagnostics must never abort the solver.
func LogStartupSummary() {
	platform := "unknown"
	if hostStat, err := host.Info(); err != nil {
		vlog.Log(vlog.LevelDebug, "sysinfo: host.Info failed: %v", err)
	} else {
		platform = fmt.Sprintf("%s %s", hostStat.Platform, hostStat.PlatformVersion)
	}

	cpuModel := "unknown"
	if cpuStat, err := cpu.Info(); err != nil {
		vlog.Log(vlog.LevelDebug, "sysinfo: cpu.Info failed: %v", err)
	} else if len(cpuStat) > 0 {
		cpuModel = cpuStat[0].ModelName
	}

	memGB := "unknown"
	if vmStat, err := mem.VirtualMemory(); err != nil {
		vlog.Log(vlog.LevelDebug, "sysinfo: mem.VirtualMemory failed: %v", err)
	} else {
		memGB = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	vlog.Log(vlog.LevelDebug, "host=%q cpu=%q mem=%q", platform, cpuModel, memGB)
}
