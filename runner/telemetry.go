// Package runner: process memory telemetry.
package runner

import (
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// processMemoryMB reports the current resident set size of this process in
// megabytes. Telemetry only: any lookup failure degrades to 0 rather than
// disturbing the run.
func processMemoryMB() float64 {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0
	}
	mi, err := p.MemoryInfo()
	if err != nil || mi == nil {
		return 0
	}
	return float64(mi.RSS) / (1 << 20)
}
