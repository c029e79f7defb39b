package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/qsim/am"
	"github.com/teranos/qsim/sim"
	"github.com/teranos/qsim/sym"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: sym.AM + " Manage qsim configuration",
	Long: sym.AM + ` am — Manage qsim configuration

Display and manage qsim configuration settings.

Configuration sources (in order of precedence):
1. Environment variables (QSIM_* prefix)
2. Project config (./qsim.toml, searches up directories)
3. User config (~/.qsim/config.toml)
4. System config (/etc/qsim/config.toml)
5. Default values

Examples:
  qsim am show                    # Show current configuration
  qsim am show --format json      # Show configuration in JSON format
  qsim am get simulator.backend   # Get specific config value
  qsim am validate                # Validate current configuration`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the current qsim configuration from all sources",
	RunE:  runAmShow,
}

var amGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., simulator.backend, simulator.shots)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAmGet,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Long:  "Validate that the current qsim configuration is valid",
	RunE:  runAmValidate,
}

var amSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value in the user config",
	Long: `Write a configuration value to ~/.qsim/config.toml, rotating backups
of any existing file first.

Supported keys: simulator.backend, simulator.seed, simulator.shots

Examples:
  qsim am set simulator.backend cpu
  qsim am set simulator.seed 42
  qsim am set simulator.shots 2048`,
	Args: cobra.ExactArgs(2),
	RunE: runAmSet,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	Long: `Show the configuration cascade and which files were checked.

Lists all configuration sources in order of precedence, showing
which files exist and which are missing.`,
	RunE: runAmWhere,
}

var configFormat string

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amGetCmd)
	AmCmd.AddCommand(amSetCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amWhereCmd)
}

func runAmSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	switch key {
	case "simulator.backend":
		if _, err := sim.ParseBackend(value); err != nil {
			return err
		}
		if err := am.UpdateSimulatorBackend(value); err != nil {
			return err
		}
	case "simulator.seed":
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil || seed < 0 {
			return fmt.Errorf("simulator.seed must be a non-negative integer, got %q", value)
		}
		if err := am.UpdateSimulatorSeed(seed); err != nil {
			return err
		}
	case "simulator.shots":
		shots, err := strconv.Atoi(value)
		if err != nil || shots <= 0 {
			return fmt.Errorf("simulator.shots must be a positive integer, got %q", value)
		}
		if err := am.UpdateSimulatorShots(shots); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported key %q (supported: simulator.backend, simulator.seed, simulator.shots)", key)
	}

	fmt.Printf("✓ %s = %s\n", key, value)
	return nil
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		fmt.Println(string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		fmt.Printf("# qsim configuration\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to TOML: %w", err)
		}
		fmt.Printf("# qsim configuration\n%s", string(data))

	default:
		return fmt.Errorf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}

	return nil
}

func runAmGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := am.GetViper()
	if !v.IsSet(key) {
		return fmt.Errorf("configuration key %q not found", key)
	}

	fmt.Println(am.Get(key))
	return nil
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	fmt.Println("✓ Configuration is valid")
	return nil
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	fmt.Println("Configuration cascade (later overrides earlier):")
	fmt.Println("  1. [DEFAULT]  Built-in defaults")
	fmt.Println("  2. [SYSTEM]   /etc/qsim/config.toml")
	fmt.Println("  3. [USER]     ~/.qsim/config.toml")
	fmt.Println("  4. [PROJECT]  ./qsim.toml (searches up directories)")
	fmt.Println("  5. [ENV]      QSIM_* environment variables")
	fmt.Println()

	home, _ := os.UserHomeDir()
	paths := []string{
		"/etc/qsim/config.toml",
		filepath.Join(home, ".qsim", "config.toml"),
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			fmt.Printf("  present  %s\n", p)
		} else {
			fmt.Printf("  missing  %s\n", p)
		}
	}
	return nil
}
