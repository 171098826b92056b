//go:build linux

package system

import (
	"os"
	"strings"
)

// readPlatformSerial reads the DMI serial straight from sysfs for the cases
// where the hardware library comes up empty.
func readPlatformSerial() string {
	paths := []string{
		"/sys/class/dmi/id/board_serial",
		"/sys/class/dmi/id/product_serial",
	}
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if s := strings.TrimSpace(string(b)); usableSerial(s) {
			return s
		}
	}
	return ""
}
