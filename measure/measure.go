// Package measure turns amplitude vectors into classical outcome
// distributions: seeded categorical sampling plus the immutable Result
// that packages sampled multiplicities.
//
// Sampling is exactly reproducible: the same seed and the same
// probability table yield identical per-index counts on every call, not
// merely statistically close ones. Bitstrings are zero-padded to the
// qubit count with qubit 0 as the rightmost character.
package measure

import (
	"math"
	"math/rand"
	"sort"

	"github.com/teranos/qsim/errors"
	"github.com/teranos/qsim/logger"
	"github.com/teranos/qsim/state"
)

// probSumTolerance bounds how far a probability table may drift from 1
// before it is considered invalid (or, for external tables, renormalized).
const probSumTolerance = 1e-9

// FromStateVector draws shots i.i.d. categorical samples from the state's
// probability distribution using a generator seeded with seed, and
// accumulates them into a Result keyed by fixed-width bitstring.
//
// The state must be normalized; a distribution that does not sum to ~1 is
// reported as numerical instability, never silently corrected.
func FromStateVector(sv *state.StateVector, shots int, seed int64) (*Result, error) {
	if shots <= 0 {
		return nil, errors.NewConfigurationError("shots must be positive, got %d", shots)
	}
	if err := sv.CheckFinite(); err != nil {
		return nil, err
	}

	probs := sv.Probabilities()
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1) > probSumTolerance {
		return nil, errors.Wrapf(errors.ErrNumericalInstability,
			"probabilities sum to %.12f, expected 1 within %g", sum, probSumTolerance)
	}

	indexCounts := sampleIndices(probs, shots, seed)

	counts := make(map[string]int, len(indexCounts))
	for idx, n := range indexCounts {
		counts[bitstring(idx, sv.NumQubits())] = n
	}
	return newResult(counts, sv.NumQubits(), shots), nil
}

// Qubits measures the full state, then re-keys each sampled bitstring by
// its requested-qubit substring and re-accumulates. Marginalizing counts
// of joint samples equals sampling the marginal distribution directly, so
// this is exact, not an asymptotic approximation.
func Qubits(sv *state.StateVector, qubits []int, shots int, seed int64) (*Result, error) {
	if err := validateQubitSubset(qubits, sv.NumQubits()); err != nil {
		return nil, err
	}

	full, err := FromStateVector(sv, shots, seed)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for bits, n := range full.counts {
		counts[marginalKey(bits, qubits)] += n
	}
	return newResult(counts, len(qubits), shots), nil
}

// SampleDistribution draws shots seeded samples from an externally
// supplied bitstring→probability table.
//
// This is the single place in the core that auto-corrects input: a table
// that does not sum to 1 within tolerance is defensively renormalized
// before sampling. A non-positive total is still an error.
func SampleDistribution(probabilities map[string]float64, shots int, seed int64) (map[string]int, error) {
	if shots <= 0 {
		return nil, errors.NewConfigurationError("shots must be positive, got %d", shots)
	}
	if len(probabilities) == 0 {
		return nil, errors.NewConfigurationError("probability table is empty")
	}

	// Sorted key order makes the cumulative walk, and therefore the
	// sampled stream, reproducible across calls.
	keys := make([]string, 0, len(probabilities))
	sum := 0.0
	for k, p := range probabilities {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, errors.Wrapf(errors.ErrNumericalInstability,
				"probability for %q is %g", k, p)
		}
		keys = append(keys, k)
		sum += p
	}
	sort.Strings(keys)

	if sum <= 0 {
		return nil, errors.Wrap(errors.ErrNumericalInstability, "probability table sums to zero")
	}

	probs := make([]float64, len(keys))
	if math.Abs(sum-1) > probSumTolerance {
		logger.Debugw("renormalizing external probability table",
			logger.FieldComponent, "measure",
			"sum", sum)
		for i, k := range keys {
			probs[i] = probabilities[k] / sum
		}
	} else {
		for i, k := range keys {
			probs[i] = probabilities[k]
		}
	}

	indexCounts := sampleIndices(probs, shots, seed)
	counts := make(map[string]int, len(indexCounts))
	for i, n := range indexCounts {
		counts[keys[i]] = n
	}
	return counts, nil
}

// sampleIndices is the shared sampling primitive: shots inverse-CDF draws
// over probs from a generator seeded with seed. Only indices with a
// non-zero count appear in the returned map.
func sampleIndices(probs []float64, shots int, seed int64) map[int]int {
	rng := rand.New(rand.NewSource(seed))
	counts := make(map[int]int)
	for s := 0; s < shots; s++ {
		r := rng.Float64()
		cumulative := 0.0
		idx := len(probs) - 1
		for i, p := range probs {
			cumulative += p
			if r < cumulative {
				idx = i
				break
			}
		}
		counts[idx]++
	}
	return counts
}

// bitstring renders a basis index as a zero-padded width-bit string,
// most significant qubit first (qubit 0 rightmost).
func bitstring(index, width int) string {
	b := make([]byte, width)
	for i := 0; i < width; i++ {
		if index>>(width-1-i)&1 == 1 {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// marginalKey extracts the requested qubits from a full bitstring,
// keeping the convention that the first requested qubit is the least
// significant (rightmost) character of the new key.
func marginalKey(bits string, qubits []int) string {
	k := len(qubits)
	out := make([]byte, k)
	for j, q := range qubits {
		out[k-1-j] = bits[len(bits)-1-q]
	}
	return string(out)
}

// validateQubitSubset checks that the requested qubits are non-empty,
// in range, and pairwise distinct.
func validateQubitSubset(qubits []int, numQubits int) error {
	if len(qubits) == 0 {
		return errors.NewCircuitStructureError("qubit subset is empty")
	}
	seen := make(map[int]bool, len(qubits))
	for _, q := range qubits {
		if q < 0 || q >= numQubits {
			return errors.NewCircuitStructureError("qubit %d out of range [0,%d)", q, numQubits)
		}
		if seen[q] {
			return errors.NewCircuitStructureError("duplicate qubit %d in subset", q)
		}
		seen[q] = true
	}
	return nil
}
