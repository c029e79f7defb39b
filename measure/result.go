package measure

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/teranos/qsim/errors"
)

// Result is an immutable mapping from fixed-width bitstring to
// non-negative sample count, together with the qubit count and the total
// number of shots. All derived queries are pure functions of this
// mapping; the result is never mutated after construction.
//
// The platform layer serializes results to JSON with exactly the field
// names counts, num_qubits, and shots, so those names are a stability
// contract.
type Result struct {
	counts    map[string]int
	numQubits int
	shots     int
}

func newResult(counts map[string]int, numQubits, shots int) *Result {
	return &Result{counts: counts, numQubits: numQubits, shots: shots}
}

// NewResult builds a result from an existing bitstring→count table, for
// callers that obtained counts elsewhere (e.g. SampleDistribution). The
// table is copied; shots is the sum of its counts.
func NewResult(counts map[string]int, numQubits int) (*Result, error) {
	if numQubits <= 0 {
		return nil, errors.NewConfigurationError("num_qubits must be positive, got %d", numQubits)
	}
	cp := make(map[string]int, len(counts))
	shots := 0
	for bits, n := range counts {
		if len(bits) != numQubits {
			return nil, errors.NewConfigurationError(
				"bitstring %q has width %d, expected %d", bits, len(bits), numQubits)
		}
		if n < 0 {
			return nil, errors.NewConfigurationError("negative count %d for %q", n, bits)
		}
		cp[bits] = n
		shots += n
	}
	return newResult(cp, numQubits, shots), nil
}

// NumQubits returns the fixed bitstring width.
func (r *Result) NumQubits() int {
	return r.numQubits
}

// Shots returns the total number of samples (the sum of all counts).
func (r *Result) Shots() int {
	return r.shots
}

// Counts returns a copy of the bitstring→count mapping.
func (r *Result) Counts() map[string]int {
	cp := make(map[string]int, len(r.counts))
	for k, v := range r.counts {
		cp[k] = v
	}
	return cp
}

// Probabilities returns count/shots per observed bitstring.
func (r *Result) Probabilities() map[string]float64 {
	probs := make(map[string]float64, len(r.counts))
	for k, v := range r.counts {
		probs[k] = float64(v) / float64(r.shots)
	}
	return probs
}

// MostFrequent returns up to n bitstrings in descending count order.
// Equal counts tie-break in ascending bitstring order; that ordering is a
// determinism policy of this implementation, not an observable of the
// underlying distribution.
func (r *Result) MostFrequent(n int) []string {
	keys := make([]string, 0, len(r.counts))
	for k := range r.counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := r.counts[keys[i]], r.counts[keys[j]]
		if ci != cj {
			return ci > cj
		}
		return keys[i] < keys[j]
	})
	if n < len(keys) {
		keys = keys[:n]
	}
	return keys
}

// MarginalCounts re-keys the counts by the requested qubit subset via
// string re-keying; no resampling occurs. The first requested qubit
// becomes the rightmost character of the marginal key.
func (r *Result) MarginalCounts(qubits []int) (map[string]int, error) {
	if err := validateQubitSubset(qubits, r.numQubits); err != nil {
		return nil, err
	}
	marginal := make(map[string]int)
	for bits, n := range r.counts {
		marginal[marginalKey(bits, qubits)] += n
	}
	return marginal, nil
}

// ExpectationValue computes ⟨P⟩ for a Pauli string over the sampled
// distribution. Only Z and I terms are supported: X/Y require a basis
// rotation before measurement, which is outside this core, so non-Z/I
// characters fail fast instead of being silently treated as identity.
//
// pauli is read most significant qubit first, matching the bitstring
// convention; it must have exactly num_qubits characters.
func (r *Result) ExpectationValue(pauli string) (float64, error) {
	if len(pauli) != r.numQubits {
		return 0, errors.NewConfigurationError(
			"pauli string %q has length %d, expected %d", pauli, len(pauli), r.numQubits)
	}
	upper := strings.ToUpper(pauli)
	for i, ch := range upper {
		if ch != 'Z' && ch != 'I' {
			return 0, errors.NewConfigurationError(
				"unsupported pauli term %q at position %d: only Z and I are measurable in the computational basis", string(ch), i)
		}
	}

	total := 0.0
	for bits, n := range r.counts {
		sign := 1.0
		for i := 0; i < len(upper); i++ {
			if upper[i] == 'Z' && bits[i] == '1' {
				sign = -sign
			}
		}
		total += sign * float64(n)
	}
	return total / float64(r.shots), nil
}

// String renders a short human-readable summary for logging.
func (r *Result) String() string {
	top := r.MostFrequent(4)
	var b strings.Builder
	fmt.Fprintf(&b, "Result(%d qubits, %d shots)", r.numQubits, r.shots)
	for _, k := range top {
		fmt.Fprintf(&b, " %s:%d", k, r.counts[k])
	}
	if len(r.counts) > len(top) {
		fmt.Fprintf(&b, " …(%d keys)", len(r.counts))
	}
	return b.String()
}

// MarshalJSON implements the stable wire shape consumed by the platform
// layer: {"counts": {...}, "num_qubits": N, "shots": S}.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Counts    map[string]int `json:"counts"`
		NumQubits int            `json:"num_qubits"`
		Shots     int            `json:"shots"`
	}{
		Counts:    r.counts,
		NumQubits: r.numQubits,
		Shots:     r.shots,
	})
}
