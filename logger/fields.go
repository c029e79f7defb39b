package logger

// Standard field names for consistent structured logging across qsim.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRunID = "run_id"

	// Components
	FieldComponent = "component"
	FieldBackend   = "backend"
	FieldPrecision = "precision"

	// Simulation
	FieldNumQubits = "num_qubits"
	FieldGateCount = "gate_count"
	FieldDepth     = "depth"
	FieldShots     = "shots"
	FieldSeed      = "seed"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"

	// Hardware
	FieldCUDAAvailable = "cuda_available"
	FieldGPUCount      = "gpu_count"
	FieldMemoryBytes   = "memory_bytes"
)
