package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// cpuSampleWindow is how long cpu.Percent samples for. Utilization needs two
// readings, so this bounds process startup latency.
const cpuSampleWindow = 200 * time.Millisecond

// GetUptime returns seconds since boot
func GetUptime() (uint64, error) {
	uptime, err := host.Uptime()
	if err != nil {
		return 0, fmt.Errorf("failed to get uptime: %w", err)
	}
	return uptime, nil
}

// GetCPUInfo returns one aggregate per CPU brand string: core count, average
// utilization and the highest reported frequency.
func GetCPUInfo() ([]CPUInfo, error) {
	cpuStat, err := cpu.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU info: %w", err)
	}
	if len(cpuStat) == 0 {
		return nil, errors.New("no CPU information available")
	}

	// System-wide utilization; attributed to every brand group below.
	var avgUsage float64
	if percents, err := cpu.Percent(cpuSampleWindow, false); err == nil && len(percents) > 0 {
		avgUsage = percents[0]
	}

	var order []string
	groups := make(map[string]*CPUInfo)
	for _, st := range cpuStat {
		brand := st.ModelName
		if brand == "" {
			brand = Unknown
		}
		g, ok := groups[brand]
		if !ok {
			g = &CPUInfo{Brand: brand}
			groups[brand] = g
			order = append(order, brand)
		}
		g.Cores++
		if st.Mhz > g.MaxFrequencyMHz {
			g.MaxFrequencyMHz = st.Mhz
		}
	}

	// Some platforms report a single aggregate entry carrying the core count
	// in Cores instead of one entry per logical CPU.
	if len(cpuStat) == 1 && cpuStat[0].Cores > 1 {
		groups[order[0]].Cores = int(cpuStat[0].Cores)
	}

	infos := make([]CPUInfo, 0, len(order))
	for _, brand := range order {
		g := groups[brand]
		g.AvgUsage = avgUsage
		infos = append(infos, *g)
	}
	return infos, nil
}

// GetMemoryInfo returns used and total physical memory in MB
func GetMemoryInfo() (usedMB, totalMB uint64, err error) {
	memStat, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get memory info: %w", err)
	}
	return memStat.Used / 1024 / 1024, memStat.Total / 1024 / 1024, nil
}
