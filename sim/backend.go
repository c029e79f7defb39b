package sim

import (
	"github.com/teranos/qsim/errors"
)

// Backend names the computational strategy used to realize circuit
// evolution. A backend is a performance choice: it must never alter the
// mathematically defined output distribution.
type Backend string

const (
	BackendAuto          Backend = "auto"
	BackendCPU           Backend = "cpu"
	BackendGPU           Backend = "gpu"
	BackendMultiGPU      Backend = "multi-gpu"
	BackendTensorNetwork Backend = "tensor-network"
	BackendStabilizer    Backend = "stabilizer"
)

// Precision names the floating-point width of the amplitude buffer.
type Precision string

const (
	PrecisionFP8  Precision = "fp8"
	PrecisionFP16 Precision = "fp16"
	PrecisionFP32 Precision = "fp32"
	PrecisionFP64 Precision = "fp64"
)

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendAuto, BackendCPU, BackendGPU, BackendMultiGPU, BackendTensorNetwork, BackendStabilizer:
		return Backend(s), nil
	default:
		return "", errors.NewConfigurationError("unknown backend %q", s)
	}
}

// ParsePrecision validates a precision name.
func ParsePrecision(s string) (Precision, error) {
	switch Precision(s) {
	case PrecisionFP8, PrecisionFP16, PrecisionFP32, PrecisionFP64:
		return Precision(s), nil
	default:
		return "", errors.NewConfigurationError("unknown precision %q", s)
	}
}

// bytesPerAmplitude returns the storage cost of one complex amplitude at
// the given precision (two floats).
func (p Precision) bytesPerAmplitude() uint64 {
	switch p {
	case PrecisionFP8:
		return 2
	case PrecisionFP16:
		return 4
	case PrecisionFP32:
		return 8
	default:
		return 16
	}
}

// SelectBackend resolves the automatic backend choice for a qubit count
// on the given hardware. Diagnostic surfaces use this to preview the
// resolution without constructing a simulator.
func SelectBackend(numQubits int, hw HardwareInfo) Backend {
	return autoSelectBackend(numQubits, hw)
}

// EstimateMemory returns the byte cost of a dense state vector of the
// given width at the given precision.
func EstimateMemory(numQubits int, p Precision) uint64 {
	if numQubits < 0 || numQubits >= 63 {
		return 0
	}
	return uint64(1) << uint(numQubits) * p.bytesPerAmplitude()
}

// autoSelectBackend resolves a backend from the qubit count alone.
//
// This is deliberately a fixed rule table, not a cost model:
//
//	n ≤ 10       → cpu
//	11 ≤ n ≤ 32  → gpu when CUDA is detected, else cpu
//	33 ≤ n ≤ 40  → multi-gpu with ≥2 devices, else tensor-network
//	n > 40       → tensor-network
//
// An explicit non-auto backend bypasses this table entirely.
func autoSelectBackend(numQubits int, hw HardwareInfo) Backend {
	switch {
	case numQubits <= 10:
		return BackendCPU
	case numQubits <= 32:
		if hw.CUDAAvailable {
			return BackendGPU
		}
		return BackendCPU
	case numQubits <= 40:
		if hw.GPUCount >= 2 {
			return BackendMultiGPU
		}
		return BackendTensorNetwork
	default:
		return BackendTensorNetwork
	}
}
