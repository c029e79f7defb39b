package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Simulator.Backend != "auto" {
		t.Errorf("expected default backend 'auto', got %q", cfg.Simulator.Backend)
	}
	if cfg.Simulator.Precision != "fp64" {
		t.Errorf("expected default precision 'fp64', got %q", cfg.Simulator.Precision)
	}
	if cfg.Simulator.Shots != DefaultShots {
		t.Errorf("expected default shots %d, got %d", DefaultShots, cfg.Simulator.Shots)
	}
	if cfg.Simulator.Seed != nil {
		t.Errorf("expected unset seed, got %d", *cfg.Simulator.Seed)
	}
	if cfg.Logging.JSON {
		t.Error("expected console logging by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qsim.toml")
	content := []byte("[simulator]\nbackend = \"cpu\"\nseed = 42\nshots = 500\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Simulator.Backend != "cpu" {
		t.Errorf("expected backend 'cpu', got %q", cfg.Simulator.Backend)
	}
	if cfg.Simulator.Seed == nil || *cfg.Simulator.Seed != 42 {
		t.Errorf("expected seed 42, got %v", cfg.Simulator.Seed)
	}
	if cfg.Simulator.Shots != 500 {
		t.Errorf("expected shots 500, got %d", cfg.Simulator.Shots)
	}
	// Defaults still fill fields the file omits
	if cfg.Simulator.Precision != "fp64" {
		t.Errorf("expected default precision 'fp64', got %q", cfg.Simulator.Precision)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate_ZeroValues(t *testing.T) {
	seed := func(v int64) *int64 { return &v }

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "zero shots is valid (use default)",
			config:  Config{Simulator: SimulatorConfig{Shots: 0}},
			wantErr: false,
		},
		{
			name:    "negative shots is invalid",
			config:  Config{Simulator: SimulatorConfig{Shots: -1}},
			wantErr: true,
		},
		{
			name:    "nil seed is valid (wall clock)",
			config:  Config{Simulator: SimulatorConfig{Seed: nil}},
			wantErr: false,
		},
		{
			name:    "zero seed is valid",
			config:  Config{Simulator: SimulatorConfig{Seed: seed(0)}},
			wantErr: false,
		},
		{
			name:    "negative seed is invalid",
			config:  Config{Simulator: SimulatorConfig{Seed: seed(-5)}},
			wantErr: true,
		},
		{
			name:    "verbosity above trace is invalid",
			config:  Config{Logging: LoggingConfig{Verbosity: 4}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetShots_FallsBackToDefault(t *testing.T) {
	cfg := Config{}
	if got := cfg.GetShots(); got != DefaultShots {
		t.Errorf("expected %d, got %d", DefaultShots, got)
	}
	cfg.Simulator.Shots = 256
	if got := cfg.GetShots(); got != 256 {
		t.Errorf("expected 256, got %d", got)
	}
}

func TestSaveRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.toml")

	seed := int64(7)
	cfg := &Config{
		Simulator: SimulatorConfig{Backend: "gpu", Precision: "fp32", Seed: &seed, Shots: 2048},
	}
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}
	if loaded.Simulator.Backend != "gpu" || loaded.Simulator.Precision != "fp32" {
		t.Errorf("unexpected simulator config after round trip: %+v", loaded.Simulator)
	}
	if loaded.Simulator.Seed == nil || *loaded.Simulator.Seed != 7 {
		t.Errorf("expected seed 7, got %v", loaded.Simulator.Seed)
	}
	if loaded.Simulator.Shots != 2048 {
		t.Errorf("expected shots 2048, got %d", loaded.Simulator.Shots)
	}
}

func TestUpdateSimulatorSettings(t *testing.T) {
	// Point the user config at a scratch home so the helpers write there
	t.Setenv("HOME", t.TempDir())

	if err := UpdateSimulatorBackend("gpu"); err != nil {
		t.Fatalf("UpdateSimulatorBackend() failed: %v", err)
	}
	if err := UpdateSimulatorSeed(42); err != nil {
		t.Fatalf("UpdateSimulatorSeed() failed: %v", err)
	}
	if err := UpdateSimulatorShots(256); err != nil {
		t.Fatalf("UpdateSimulatorShots() failed: %v", err)
	}

	cfg, err := LoadFromFile(UserConfigPath())
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}
	if cfg.Simulator.Backend != "gpu" {
		t.Errorf("expected backend 'gpu', got %q", cfg.Simulator.Backend)
	}
	if cfg.Simulator.Seed == nil || *cfg.Simulator.Seed != 42 {
		t.Errorf("expected seed 42, got %v", cfg.Simulator.Seed)
	}
	if cfg.Simulator.Shots != 256 {
		t.Errorf("expected shots 256, got %d", cfg.Simulator.Shots)
	}

	// Each update rewrites only its own key; the others must survive
	if err := UpdateSimulatorShots(1024); err != nil {
		t.Fatalf("UpdateSimulatorShots() failed: %v", err)
	}
	cfg, err = LoadFromFile(UserConfigPath())
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}
	if cfg.Simulator.Backend != "gpu" {
		t.Errorf("backend lost after shots update, got %q", cfg.Simulator.Backend)
	}
	if cfg.Simulator.Seed == nil || *cfg.Simulator.Seed != 42 {
		t.Errorf("seed lost after shots update, got %v", cfg.Simulator.Seed)
	}
	if cfg.Simulator.Shots != 1024 {
		t.Errorf("expected shots 1024, got %d", cfg.Simulator.Shots)
	}
}

func TestCreateBackup_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	// No file yet: backup is a no-op
	if err := createBackup(path); err != nil {
		t.Fatalf("createBackup() on missing file: %v", err)
	}

	writeVersion := func(s string) {
		if err := os.WriteFile(path, []byte(s), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
		if err := createBackup(path); err != nil {
			t.Fatalf("createBackup() failed: %v", err)
		}
	}

	writeVersion("v1")
	writeVersion("v2")
	writeVersion("v3")

	back1, err := os.ReadFile(path + ".back1")
	if err != nil {
		t.Fatalf("reading .back1: %v", err)
	}
	if string(back1) != "v3" {
		t.Errorf("expected .back1 to hold newest snapshot 'v3', got %q", back1)
	}

	back3, err := os.ReadFile(path + ".back3")
	if err != nil {
		t.Fatalf("reading .back3: %v", err)
	}
	if string(back3) != "v1" {
		t.Errorf("expected .back3 to hold oldest snapshot 'v1', got %q", back3)
	}
}
