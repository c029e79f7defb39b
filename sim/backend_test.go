package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/qsim/errors"
)

func TestParseBackend(t *testing.T) {
	for _, name := range []string{"cpu", "gpu", "multi-gpu", "tensor-network", "stabilizer", "auto"} {
		b, err := ParseBackend(name)
		require.NoError(t, err, name)
		assert.Equal(t, Backend(name), b)
	}

	_, err := ParseBackend("quantum-annealer")
	require.Error(t, err)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestParsePrecision(t *testing.T) {
	for _, name := range []string{"fp8", "fp16", "fp32", "fp64"} {
		p, err := ParsePrecision(name)
		require.NoError(t, err, name)
		assert.Equal(t, Precision(name), p)
	}

	_, err := ParsePrecision("fp128")
	require.Error(t, err)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestAutoSelectBackendPolicyTable(t *testing.T) {
	noGPU := HardwareInfo{}
	oneGPU := HardwareInfo{CUDAAvailable: true, GPUCount: 1}
	twoGPU := HardwareInfo{CUDAAvailable: true, GPUCount: 2}

	tests := []struct {
		name      string
		numQubits int
		hw        HardwareInfo
		want      Backend
	}{
		{"small always cpu", 8, twoGPU, BackendCPU},
		{"boundary 10 cpu", 10, twoGPU, BackendCPU},
		{"medium with cuda", 20, oneGPU, BackendGPU},
		{"medium without cuda", 20, noGPU, BackendCPU},
		{"boundary 32 gpu", 32, oneGPU, BackendGPU},
		{"large two devices", 35, twoGPU, BackendMultiGPU},
		{"large one device", 35, oneGPU, BackendTensorNetwork},
		{"large no device", 35, noGPU, BackendTensorNetwork},
		{"boundary 40", 40, twoGPU, BackendMultiGPU},
		{"huge always tensor-network", 41, twoGPU, BackendTensorNetwork},
		{"very huge", 64, noGPU, BackendTensorNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, autoSelectBackend(tt.numQubits, tt.hw))
		})
	}
}

func TestAutoSelectNeverPicksCPUAbove32(t *testing.T) {
	for n := 33; n <= 50; n++ {
		for _, hw := range []HardwareInfo{{}, {CUDAAvailable: true, GPUCount: 1}, {CUDAAvailable: true, GPUCount: 4}} {
			got := autoSelectBackend(n, hw)
			assert.NotEqual(t, BackendCPU, got, "n=%d hw=%+v", n, hw)
		}
	}
}

func TestBytesPerAmplitude(t *testing.T) {
	assert.Equal(t, uint64(2), PrecisionFP8.bytesPerAmplitude())
	assert.Equal(t, uint64(4), PrecisionFP16.bytesPerAmplitude())
	assert.Equal(t, uint64(8), PrecisionFP32.bytesPerAmplitude())
	assert.Equal(t, uint64(16), PrecisionFP64.bytesPerAmplitude())
}

func TestMultiGPUAvailable(t *testing.T) {
	assert.False(t, HardwareInfo{GPUCount: 1}.MultiGPUAvailable())
	assert.True(t, HardwareInfo{GPUCount: 2}.MultiGPUAvailable())
}

func TestSelectBackendMatchesPolicy(t *testing.T) {
	hw := HardwareInfo{CUDAAvailable: true, GPUCount: 2}
	for _, n := range []int{1, 10, 20, 33, 41} {
		assert.Equal(t, autoSelectBackend(n, hw), SelectBackend(n, hw))
	}
}

func TestEstimateMemory(t *testing.T) {
	assert.Equal(t, uint64(16), EstimateMemory(0, PrecisionFP64))
	assert.Equal(t, uint64(16<<10), EstimateMemory(10, PrecisionFP64))
	assert.Equal(t, uint64(8<<20), EstimateMemory(20, PrecisionFP32))
	assert.Equal(t, uint64(0), EstimateMemory(63, PrecisionFP64), "beyond addressable state space")
	assert.Equal(t, uint64(0), EstimateMemory(-1, PrecisionFP64))
}
