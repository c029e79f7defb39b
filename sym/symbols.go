// Package sym defines canonical symbols for qsim command surfaces and
// system markers. These symbols are stable across CLI output and
// documentation.
package sym

// Glyph string constants — the visual expression of each symbol.
const (
	AM   = "≡" // am — configuration and system settings
	PSI  = "Ψ" // run — state vector evolution
	KET0 = "∣0⟩" // ground state — circuit initialization
	HW   = "⌬" // info — hardware and backend diagnostics
	MEAS = "⤓" // measurement — collapse to counts
)

// Names maps each glyph to its command surface name.
var Names = map[string]string{
	AM:   "am",
	PSI:  "run",
	KET0: "init",
	HW:   "info",
	MEAS: "measure",
}

// ForName returns the glyph for a command surface name, or the empty
// string when the name has no symbol.
func ForName(name string) string {
	for glyph, n := range Names {
		if n == name {
			return glyph
		}
	}
	return ""
}
