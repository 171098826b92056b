//go:build !linux

package system

// readPlatformSerial has no extra sources outside Linux.
func readPlatformSerial() string {
	return ""
}
