package qsim

import (
	"fmt"
	"strings"
)

/*
DensityMatrix is the outer product of a qubit's real amplitude vector with
itself:

	[alpha²      alpha·beta]
	[alpha·beta  beta²     ]

It is only a density matrix for the pure, real-amplitude states this model
produces; it cannot describe mixed states.
*/
type DensityMatrix [2][2]float32

func DensityMatrixOf(q Qubit) DensityMatrix {
	ab := q.alpha * q.beta

	return DensityMatrix{
		{q.alpha * q.alpha, ab},
		{ab, q.beta * q.beta},
	}
}

// At returns the element at row i, column j.
func (m DensityMatrix) At(i, j int) (float32, error) {
	if i < 0 || i > 1 || j < 0 || j > 1 {
		return 0, fmt.Errorf("density matrix at (%d, %d): %w", i, j, ErrIndexOutOfRange)
	}

	return m[i][j], nil
}

// Trace is the total probability, 1 for a normalized qubit.
func (m DensityMatrix) Trace() float32 {
	return m[0][0] + m[1][1]
}

// Purity returns Tr(ρ²), which is 1 for every normalized state in this model.
func (m DensityMatrix) Purity() float32 {
	var sum float32

	for i := 0; i < 2; i++ {
		for k := 0; k < 2; k++ {
			sum += m[i][k] * m[k][i]
		}
	}

	return sum
}

func (m DensityMatrix) String() string {
	var sb strings.Builder

	for i, row := range m {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%6.3f %6.3f]", row[0], row[1])
	}

	return sb.String()
}

// DensityMatrices returns the density matrix of every qubit in reg.
func DensityMatrices(reg *Register) []DensityMatrix {
	out := make([]DensityMatrix, len(reg.qubits))

	for i, q := range reg.qubits {
		out[i] = DensityMatrixOf(q)
	}

	return out
}

// Histogram counts recorded outcomes. Zero and One are always present.
type Histogram map[Outcome]int

func NewHistogram() Histogram {
	return Histogram{Zero: 0, One: 0}
}

// HistogramOf counts the recorded measurements across reg, skipping slots
// that have not been measured.
func HistogramOf(reg *Register) Histogram {
	h := NewHistogram()

	for _, o := range reg.measurements {
		if o.Valid() {
			h[o]++
		}
	}

	return h
}

// Total is the number of counted outcomes.
func (h Histogram) Total() int {
	return h[Zero] + h[One]
}

// Add folds the counts of other into h.
func (h Histogram) Add(other Histogram) {
	h[Zero] += other[Zero]
	h[One] += other[One]
}

// Frequencies returns the observed fraction of Zero and One outcomes, or
// (0, 0) when nothing was counted.
func (h Histogram) Frequencies() (float64, float64) {
	total := h.Total()
	if total == 0 {
		return 0, 0
	}

	return float64(h[Zero]) / float64(total), float64(h[One]) / float64(total)
}
