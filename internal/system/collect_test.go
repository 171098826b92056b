package system

import (
	"testing"

	"github.com/jaypipes/ghw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFullyConstructed(t *testing.T) {
	info := Collect()

	// Every string fact is either a real value or the placeholder, never
	// left empty.
	assert.NotEmpty(t, info.Username)
	assert.NotEmpty(t, info.Hostname)
	assert.NotEmpty(t, info.OS)
	assert.NotEmpty(t, info.Kernel)
	assert.NotEmpty(t, info.SerialNumber)
	for _, c := range info.CPUs {
		assert.NotEmpty(t, c.Brand)
		assert.Greater(t, c.Cores, 0)
	}
	for _, g := range info.GPUs {
		assert.NotEmpty(t, g.Model)
	}
	assert.LessOrEqual(t, info.MemoryUsedMB, info.MemoryTotalMB)
}

func TestGetMemoryInfo(t *testing.T) {
	used, total, err := GetMemoryInfo()
	require.NoError(t, err)
	assert.Greater(t, total, uint64(0))
	assert.LessOrEqual(t, used, total)
}

func TestGetCPUInfoGroups(t *testing.T) {
	infos, err := GetCPUInfo()
	require.NoError(t, err)
	require.NotEmpty(t, infos)

	seen := make(map[string]bool)
	for _, c := range infos {
		assert.False(t, seen[c.Brand], "brand %q grouped twice", c.Brand)
		seen[c.Brand] = true
		assert.Greater(t, c.Cores, 0)
		assert.GreaterOrEqual(t, c.AvgUsage, 0.0)
	}
}

func TestUsableSerial(t *testing.T) {
	assert.False(t, usableSerial(""))
	assert.False(t, usableSerial("unknown"))
	assert.False(t, usableSerial("Unknown"))
	assert.True(t, usableSerial("PF3H1XYZ"))
}

func TestGPUModelSkipsUnnamedCards(t *testing.T) {
	assert.Empty(t, gpuModel(&ghw.GraphicsCard{DeviceInfo: nil}))
}
