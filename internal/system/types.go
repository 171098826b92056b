package system

// Unknown is substituted for any fact that cannot be determined on the
// current platform.
const Unknown = "Unknown"

// SystemInfo is the flat record of everything Collect could learn about
// the local machine. Unavailable string facts hold Unknown; unavailable
// numeric facts hold zero and unavailable lists are empty.
type SystemInfo struct {
	Username      string
	Hostname      string
	OS            string
	Kernel        string
	SerialNumber  string
	UptimeSeconds uint64
	CPUs          []CPUInfo
	GPUs          []GPUInfo
	MemoryUsedMB  uint64
	MemoryTotalMB uint64
}

// CPUInfo aggregates the logical CPUs sharing one brand string.
type CPUInfo struct {
	Brand           string
	Cores           int
	AvgUsage        float64
	MaxFrequencyMHz float64
}

// GPUInfo is one detected graphics card.
type GPUInfo struct {
	Index int
	Model string
}
