package sim

import (
	"os/exec"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/teranos/qsim/logger"
)

// HardwareInfo is the result of the one cheap synchronous hardware probe
// consulted during backend resolution.
type HardwareInfo struct {
	CUDAAvailable    bool
	GPUCount         int
	LogicalCores     int
	TotalMemoryBytes uint64
}

// MultiGPUAvailable reports whether at least two CUDA devices were found.
func (h HardwareInfo) MultiGPUAvailable() bool {
	return h.GPUCount >= 2
}

// DetectHardware probes CPU core count, total memory, and CUDA devices.
// A failed probe downgrades the corresponding capability rather than
// propagating an error: backend resolution must never fail on a probe.
func DetectHardware() HardwareInfo {
	hw := HardwareInfo{}

	if cores, err := cpu.Counts(true); err == nil {
		hw.LogicalCores = cores
	} else {
		logger.Warnw("cpu probe failed, assuming single core",
			logger.FieldComponent, "sim",
			logger.FieldError, err)
		hw.LogicalCores = 1
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		hw.TotalMemoryBytes = vm.Total
	} else {
		logger.Warnw("memory probe failed, memory checks disabled",
			logger.FieldComponent, "sim",
			logger.FieldError, err)
	}

	hw.GPUCount = detectCUDADevices()
	hw.CUDAAvailable = hw.GPUCount > 0

	logger.Debugw("hardware probe complete",
		logger.FieldComponent, "sim",
		logger.FieldCUDAAvailable, hw.CUDAAvailable,
		logger.FieldGPUCount, hw.GPUCount,
		"logical_cores", hw.LogicalCores,
		logger.FieldMemoryBytes, hw.TotalMemoryBytes)
	return hw
}

// detectCUDADevices counts CUDA devices via nvidia-smi. An unavailable or
// failing nvidia-smi means zero devices, never an error.
func detectCUDADevices() int {
	out, err := exec.Command("nvidia-smi", "--query-gpu=name", "--format=csv,noheader").Output()
	if err != nil {
		return 0
	}
	count := 0
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
