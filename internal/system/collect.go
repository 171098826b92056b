package system

// Collect queries every fact category once and returns a fully constructed
// SystemInfo. Collection is best-effort: a query that fails on the current
// platform leaves its field at the Unknown placeholder (or zero/empty for
// numeric and list facts) and never aborts the rest of the run.
func Collect() SystemInfo {
	info := SystemInfo{
		Username:     Unknown,
		Hostname:     Unknown,
		OS:           Unknown,
		Kernel:       Unknown,
		SerialNumber: Unknown,
	}

	if v, err := GetUsername(); err == nil {
		info.Username = v
	}
	if v, err := GetHostname(); err == nil {
		info.Hostname = v
	}
	if v, err := GetOSInfo(); err == nil {
		info.OS = v
	}
	if v, err := GetKernelInfo(); err == nil {
		info.Kernel = v
	}
	if v, err := GetSerialNumber(); err == nil {
		info.SerialNumber = v
	}
	if v, err := GetUptime(); err == nil {
		info.UptimeSeconds = v
	}
	if v, err := GetCPUInfo(); err == nil {
		info.CPUs = v
	}
	if v, err := GetGPUInfo(); err == nil {
		info.GPUs = v
	}
	if used, total, err := GetMemoryInfo(); err == nil {
		info.MemoryUsedMB = used
		info.MemoryTotalMB = total
	}
	return info
}
