// Package sim evolves state vectors through circuits.
//
// A Simulator resolves an execution backend from the qubit count and a
// hardware probe, applies a circuit's instructions in program order to a
// dense amplitude vector, and delegates sampling to the measure package.
//
// Evolution is purely deterministic: no RNG is consulted until
// measurement, and identical inputs give bit-identical output across
// calls. The sampling seed is fixed once at Simulator construction, so
// one simulator re-running the same circuit reproduces identical counts.
//
// A Simulator has no internal concurrency; parallelism is legitimate only
// across independent Simulator instances, each run owning an exclusive
// state vector.
package sim

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/teranos/qsim/circuit"
	"github.com/teranos/qsim/errors"
	"github.com/teranos/qsim/logger"
	"github.com/teranos/qsim/measure"
	"github.com/teranos/qsim/state"
)

// DefaultShots is used when a run does not specify a shot count.
const DefaultShots = 1024

// Config holds the constructor arguments of a Simulator. Omitted fields
// are filled from the owning application's process configuration before
// construction; the core keeps no hidden global defaults.
type Config struct {
	// Backend is the execution backend, or "auto" (the zero value maps
	// to auto) to resolve per run from the qubit count.
	Backend Backend

	// Precision is the amplitude storage precision. Zero value maps to
	// fp64. The dense engine computes in complex128 regardless; the
	// precision descriptor drives memory estimates and backend info.
	Precision Precision

	// Seed is the sampling seed, fixed for the lifetime of the
	// simulator. nil draws a wall-clock seed at construction: two
	// unseeded simulators have no cross-instance reproducibility
	// guarantee, which is a documented hazard rather than a defect.
	Seed *int64

	// Hardware optionally injects a pre-probed hardware description,
	// chiefly for tests. nil probes lazily on first use.
	Hardware *HardwareInfo
}

// Simulator executes circuits. Safe for sequential reuse; create one
// instance per goroutine for concurrent work.
type Simulator struct {
	backend   Backend
	precision Precision
	seed      int64

	probeOnce sync.Once
	hw        HardwareInfo
	hwProbed  bool
}

// BackendInfo is the diagnostic description of a simulator. Field names
// are a stability contract with the platform layer's JSON serialization.
type BackendInfo struct {
	Backend           string `json:"backend"`
	Precision         string `json:"precision"`
	Seed              int64  `json:"seed"`
	CUDAAvailable     bool   `json:"cuda_available"`
	MultiGPUAvailable bool   `json:"multi_gpu_available"`
}

// New constructs a Simulator. Unknown backend or precision names and
// negative seeds are configuration errors, fatal and never retried.
func New(cfg Config) (*Simulator, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = BackendAuto
	}
	if _, err := ParseBackend(string(backend)); err != nil {
		return nil, err
	}

	precision := cfg.Precision
	if precision == "" {
		precision = PrecisionFP64
	}
	if _, err := ParsePrecision(string(precision)); err != nil {
		return nil, err
	}

	var seed int64
	if cfg.Seed != nil {
		if *cfg.Seed < 0 {
			return nil, errors.NewConfigurationError("seed must be non-negative, got %d", *cfg.Seed)
		}
		seed = *cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	s := &Simulator{
		backend:   backend,
		precision: precision,
		seed:      seed,
	}
	if cfg.Hardware != nil {
		s.hw = *cfg.Hardware
		s.hwProbed = true
	}
	return s, nil
}

// hardware returns the probed hardware description, probing at most once
// per simulator.
func (s *Simulator) hardware() HardwareInfo {
	s.probeOnce.Do(func() {
		if !s.hwProbed {
			s.hw = DetectHardware()
			s.hwProbed = true
		}
	})
	return s.hw
}

// Seed returns the sampling seed fixed at construction.
func (s *Simulator) Seed() int64 {
	return s.seed
}

// BackendInfo returns the diagnostic backend description.
func (s *Simulator) BackendInfo() BackendInfo {
	hw := s.hardware()
	return BackendInfo{
		Backend:           string(s.backend),
		Precision:         string(s.precision),
		Seed:              s.seed,
		CUDAAvailable:     hw.CUDAAvailable,
		MultiGPUAvailable: hw.MultiGPUAvailable(),
	}
}

// resolveBackend resolves the execution backend for one run. An explicit
// non-auto backend bypasses the policy table entirely.
func (s *Simulator) resolveBackend(numQubits int) Backend {
	if s.backend != BackendAuto {
		return s.backend
	}
	return autoSelectBackend(numQubits, s.hardware())
}

// RunStateVector initializes the state to |0...0⟩ unless an initial state
// is supplied (which is copied, never aliased), applies every instruction
// in program order, and returns the final state vector.
//
// Purely deterministic: identical (circuit, initial state) inputs give
// bit-identical amplitudes on every call.
func (s *Simulator) RunStateVector(c *circuit.Circuit, initial *state.StateVector) (*state.StateVector, error) {
	if c == nil {
		return nil, errors.NewConfigurationError("circuit is nil")
	}
	// Re-check structure defensively; the circuit may have been built
	// without a Validate call.
	if err := c.Validate(); err != nil {
		return nil, err
	}

	n := c.NumQubits()
	if err := s.checkMemory(n); err != nil {
		return nil, err
	}

	var sv *state.StateVector
	if initial != nil {
		if initial.NumQubits() != n {
			return nil, errors.Wrapf(errors.ErrDimensionMismatch,
				"initial state has %d qubits, circuit has %d", initial.NumQubits(), n)
		}
		sv = initial.Copy()
	} else {
		var err error
		sv, err = state.Zero(n)
		if err != nil {
			return nil, err
		}
	}

	backend := s.resolveBackend(n)
	logger.Debugw("evolving state vector",
		logger.FieldComponent, "sim",
		logger.FieldBackend, string(backend),
		logger.FieldNumQubits, n,
		logger.FieldGateCount, c.GateCount())

	// Every backend descriptor currently delegates to the dense strided
	// engine; the descriptor records the resolution policy outcome
	// without changing the defined output distribution.
	amps := sv.Amplitudes()
	for _, inst := range c.Instructions() {
		if err := applyInstruction(amps, n, inst); err != nil {
			return nil, err
		}
	}

	if err := sv.CheckFinite(); err != nil {
		return nil, err
	}
	return sv, nil
}

// Run evolves the circuit and samples the final distribution.
//
// shots == 0 uses DefaultShots; negative shot counts are rejected by the
// measurement layer. The simulator's seed is handed to measurement, so
// repeated Run calls on the same simulator with the same circuit yield
// identical counts.
func (s *Simulator) Run(c *circuit.Circuit, initial *state.StateVector, shots int) (*measure.Result, error) {
	if shots == 0 {
		shots = DefaultShots
	}

	runID := uuid.NewString()
	start := time.Now()

	sv, err := s.RunStateVector(c, initial)
	if err != nil {
		return nil, err
	}

	res, err := measure.FromStateVector(sv, shots, s.seed)
	if err != nil {
		return nil, err
	}

	logger.Infow("run complete",
		logger.FieldComponent, "sim",
		logger.FieldRunID, runID,
		logger.FieldBackend, string(s.resolveBackend(c.NumQubits())),
		logger.FieldNumQubits, c.NumQubits(),
		logger.FieldShots, shots,
		logger.FieldSeed, s.seed,
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return res, nil
}

// checkMemory refuses dense state allocations that clearly exceed the
// machine's total memory. A probe that found no memory figure disables
// the check.
func (s *Simulator) checkMemory(numQubits int) error {
	hw := s.hardware()
	if hw.TotalMemoryBytes == 0 || numQubits >= 63 {
		if numQubits >= 63 {
			return errors.NewConfigurationError("%d qubits exceeds addressable state space", numQubits)
		}
		return nil
	}
	required := EstimateMemory(numQubits, s.precision)
	if required > hw.TotalMemoryBytes {
		return errors.NewConfigurationError(
			"dense state of %d qubits requires %d bytes, total memory is %d",
			numQubits, required, hw.TotalMemoryBytes)
	}
	return nil
}
