package am

// Config represents the core qsim configuration
type Config struct {
	Simulator SimulatorConfig `mapstructure:"simulator" toml:"simulator"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging"`
}

// SimulatorConfig configures default simulator construction. Backend and
// precision names are validated by the simulator itself at construction.
type SimulatorConfig struct {
	Backend   string `mapstructure:"backend" toml:"backend"`         // auto, cpu, gpu, multi-gpu, tensor-network, stabilizer
	Precision string `mapstructure:"precision" toml:"precision"`     // fp8, fp16, fp32, fp64
	Seed      *int64 `mapstructure:"seed" toml:"seed,omitempty"`     // nil = wall clock at construction (runs not reproducible)
	Shots     int    `mapstructure:"shots" toml:"shots"`             // default shot count when a run requests 0
}

// LoggingConfig configures log output
type LoggingConfig struct {
	JSON      bool `mapstructure:"json" toml:"json"`           // structured JSON output instead of console encoding
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity"` // 0=user, 1=info, 2=debug, 3=trace
}

// DefaultShots is the shot count used when neither config nor caller supplies one
const DefaultShots = 1024

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
