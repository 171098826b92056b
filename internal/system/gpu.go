package system

import (
	"fmt"
	"sort"

	"github.com/jaypipes/ghw"
)

// GetGPUInfo enumerates graphics cards, ordered by device index. Cards the
// PCI database cannot name are skipped; an empty slice is a valid result.
func GetGPUInfo() ([]GPUInfo, error) {
	gpu, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return nil, fmt.Errorf("failed to get GPU info: %w", err)
	}

	var gpus []GPUInfo
	for _, card := range gpu.GraphicsCards {
		model := gpuModel(card)
		if model == "" {
			continue
		}
		gpus = append(gpus, GPUInfo{Index: card.Index, Model: model})
	}
	sort.Slice(gpus, func(i, j int) bool { return gpus[i].Index < gpus[j].Index })
	return gpus, nil
}

func gpuModel(card *ghw.GraphicsCard) string {
	di := card.DeviceInfo
	if di == nil || di.Product == nil || di.Product.Name == "" {
		return ""
	}
	if di.Vendor != nil && di.Vendor.Name != "" {
		return di.Vendor.Name + " " + di.Product.Name
	}
	return di.Product.Name
}
