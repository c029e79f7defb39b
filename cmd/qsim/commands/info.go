package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/qsim/display"
	"github.com/teranos/qsim/sim"
	"github.com/teranos/qsim/sym"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: sym.HW + " Show hardware and backend diagnostics",
	Long: sym.HW + ` info — Probe the machine and show backend selection.

Probes CPU cores, total memory, and CUDA devices, then previews which
backend the automatic policy would pick at representative qubit counts.

Examples:
  qsim info
  qsim info --json`,
	RunE: runInfo,
}

func init() {
	InfoCmd.Flags().BoolP("json", "j", false, "Output diagnostics as JSON")
}

// infoOutput is the JSON shape of the diagnostics
type infoOutput struct {
	CUDAAvailable    bool              `json:"cuda_available"`
	GPUCount         int               `json:"gpu_count"`
	LogicalCores     int               `json:"logical_cores"`
	TotalMemoryBytes uint64            `json:"total_memory_bytes"`
	Selection        map[string]string `json:"selection"`
	MemoryEstimates  map[string]uint64 `json:"memory_estimates"`
}

// previewQubits are the qubit counts shown in the selection preview,
// chosen to straddle the policy boundaries.
var previewQubits = []int{8, 10, 11, 20, 32, 33, 40, 41}

func runInfo(cmd *cobra.Command, args []string) error {
	hw := sim.DetectHardware()

	if display.ShouldOutputJSON(cmd) {
		selection := make(map[string]string, len(previewQubits))
		estimates := make(map[string]uint64, len(previewQubits))
		for _, n := range previewQubits {
			key := strconv.Itoa(n)
			selection[key] = string(sim.SelectBackend(n, hw))
			estimates[key] = sim.EstimateMemory(n, sim.PrecisionFP64)
		}
		return display.OutputJSON(infoOutput{
			CUDAAvailable:    hw.CUDAAvailable,
			GPUCount:         hw.GPUCount,
			LogicalCores:     hw.LogicalCores,
			TotalMemoryBytes: hw.TotalMemoryBytes,
			Selection:        selection,
			MemoryEstimates:  estimates,
		})
	}

	pterm.Info.Println("Hardware probe")
	pterm.Printf("  Logical cores: %d\n", hw.LogicalCores)
	pterm.Printf("  Total memory:  %.1f GiB\n", float64(hw.TotalMemoryBytes)/(1<<30))
	if hw.CUDAAvailable {
		pterm.Printf("  CUDA devices:  %d\n", hw.GPUCount)
	} else {
		pterm.Printf("  CUDA devices:  none\n")
	}
	pterm.Println()

	pterm.Info.Println("Automatic backend selection (fp64 state vector)")
	for _, n := range previewQubits {
		backend := sim.SelectBackend(n, hw)
		bytes := sim.EstimateMemory(n, sim.PrecisionFP64)
		pterm.Printf("  %2d qubits → %-14s (%s)\n", n, backend, formatBytes(bytes))
	}
	return nil
}

// formatBytes renders a byte count with a binary unit suffix
func formatBytes(b uint64) string {
	switch {
	case b >= 1<<40:
		return fmt.Sprintf("%.1f TiB", float64(b)/(1<<40))
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
