package system

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v4/host"
)

// GetUsername returns the name of the logged-in user
func GetUsername() (string, error) {
	users, err := host.Users()
	if err == nil {
		for _, u := range users {
			if u.User != "" {
				return u.User, nil
			}
		}
	}

	// No utmp on this platform (or nobody logged in); fall back to env
	for _, key := range []string{"USER", "LOGNAME", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", errors.New("no logged-in user and no user environment variable")
}

// GetHostname returns the machine hostname
func GetHostname() (string, error) {
	hostStat, err := host.Info()
	if err == nil && hostStat.Hostname != "" {
		return hostStat.Hostname, nil
	}

	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("failed to get hostname: %w", err)
	}
	return name, nil
}

// GetOSInfo returns formatted OS information
func GetOSInfo() (string, error) {
	hostStat, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("failed to get host info: %w", err)
	}

	return fmt.Sprintf("%s %s %s", hostStat.Platform, hostStat.PlatformVersion, hostStat.KernelArch), nil
}

// GetKernelInfo returns formatted kernel information
func GetKernelInfo() (string, error) {
	hostStat, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("failed to get host info: %w", err)
	}

	return fmt.Sprintf("%s %s", hostStat.OS, hostStat.KernelVersion), nil
}

// GetSerialNumber returns the baseboard serial number. Availability is
// platform-dependent and usually requires root on Linux.
func GetSerialNumber() (string, error) {
	board, err := ghw.Baseboard(ghw.WithDisableWarnings())
	if err == nil && usableSerial(board.SerialNumber) {
		return board.SerialNumber, nil
	}

	if s := readPlatformSerial(); s != "" {
		return s, nil
	}
	return "", errors.New("serial number not available on this platform")
}

// usableSerial filters the sentinel values ghw reports when DMI data is
// missing or masked.
func usableSerial(s string) bool {
	return s != "" && !strings.EqualFold(s, "unknown")
}
