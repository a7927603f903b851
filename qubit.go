package qsim

import (
	"fmt"
	"math"
)

const invSqrt2 = float32(1 / math.Sqrt2)

// Outcome is the classical result of measuring a qubit.
type Outcome int8

const (
	Unmeasured Outcome = iota - 1
	Zero
	One
)

// Valid reports whether the outcome is an actual measurement result.
func (o Outcome) Valid() bool {
	return o == Zero || o == One
}

func (o Outcome) String() string {
	switch o {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "-"
	}
}

/*
Qubit is a simulated two-level system held as a pair of real amplitudes for
the |0⟩ and |1⟩ basis outcomes. There is no relative phase, so the model
covers the x-z great circle of the Bloch sphere only.

The zero value is the degenerate (0, 0) pair. Use NewQubit or
NewQubitWithState to obtain a usable state.
*/
type Qubit struct {
	alpha float32 // |0⟩ amplitude
	beta  float32 // |1⟩ amplitude
}

// NewQubit returns a qubit in the definite |0⟩ state.
func NewQubit() Qubit {
	return Qubit{alpha: 1, beta: 0}
}

// NewQubitWithState normalizes the given amplitudes into a qubit.
func NewQubitWithState(alpha, beta float32) (Qubit, error) {
	q := Qubit{alpha: alpha, beta: beta}

	if err := q.Normalize(); err != nil {
		return q, fmt.Errorf("new qubit (%g, %g): %w", alpha, beta, ErrInvalidState)
	}

	return q, nil
}

func (q *Qubit) Alpha() float32 { return q.alpha }
func (q *Qubit) Beta() float32  { return q.beta }

func (q *Qubit) ApplyHadamard() error {
	// H = 1/√2 * [1  1]
	//           [1 -1]
	newAlpha := (q.alpha + q.beta) * invSqrt2
	newBeta := (q.alpha - q.beta) * invSqrt2
	q.alpha = newAlpha
	q.beta = newBeta

	return q.Normalize()
}

func (q *Qubit) ApplyPauliX() error {
	q.alpha, q.beta = q.beta, q.alpha
	return q.Normalize()
}

/*
ApplyPauliY applies the real-valued stand-in for Pauli-Y:

	[0 -1]
	[1  0]

The true gate carries a factor of i that real amplitudes cannot hold, so this
is -i·Y. Two applications negate both amplitudes, which is the same physical
state; four applications return the original pair exactly.
*/
func (q *Qubit) ApplyPauliY() error {
	q.alpha, q.beta = -q.beta, q.alpha
	return q.Normalize()
}

func (q *Qubit) ApplyPauliZ() error {
	q.beta = -q.beta
	return q.Normalize()
}

/*
ApplyControlledPhaseShift samples the qubit with rng and negates the |1⟩
amplitude when the draw lands on One. The gate is therefore not deterministic:
it consumes a random draw on every call, and two qubits with identical
amplitudes can come out of it differently.
*/
func (q *Qubit) ApplyControlledPhaseShift(rng Source) error {
	if q.Measure(rng) == One {
		q.beta = -q.beta
	}

	return q.Normalize()
}

/*
Normalize rescales the amplitudes so that alpha² + beta² = 1. The norm is
taken in float64 so that amplitudes near the float32 limits neither overflow
nor underflow. A zero, NaN or infinite norm leaves the state unchanged and
returns ErrDegenerateState.
*/
func (q *Qubit) Normalize() error {
	alpha, beta := float64(q.alpha), float64(q.beta)
	norm := math.Hypot(alpha, beta)

	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return ErrDegenerateState
	}

	q.alpha = float32(alpha / norm)
	q.beta = float32(beta / norm)

	return nil
}

/*
Measure draws an outcome with probability alpha² for Zero. The amplitudes are
left untouched: the simulator does not collapse on measurement. Callers who
want the state to follow the result call Collapse with it.
*/
func (q *Qubit) Measure(rng Source) Outcome {
	if rng.Float32() < q.alpha*q.alpha {
		return Zero
	}

	return One
}

// Collapse overwrites the state with the basis state of the given outcome.
func (q *Qubit) Collapse(o Outcome) error {
	switch o {
	case Zero:
		q.alpha, q.beta = 1, 0
	case One:
		q.alpha, q.beta = 0, 1
	default:
		return fmt.Errorf("collapse to %v: %w", o, ErrInvalidState)
	}

	return nil
}

// Probabilities returns the probability of measuring Zero and One.
func (q *Qubit) Probabilities() (float32, float32) {
	return q.alpha * q.alpha, q.beta * q.beta
}

/*
IsPure reports whether the qubit sits exactly on |0⟩ or |1⟩. Every state in
this model is pure in the density-matrix sense, so this is a basis-state check
and not a purity test. States with a negative unit amplitude, such as the
result of Pauli-Y on |0⟩ followed by Pauli-Z, do not qualify.
*/
func (q *Qubit) IsPure() bool {
	return q.alpha == 1 || q.beta == 1
}

/*
BlochCoordinates maps the state onto the Bloch sphere. With zero relative
phase the point lies in the x-z plane:

	x = 2·alpha·beta
	y = 0
	z = alpha² - beta²

For a normalized state x² + z² = (alpha² + beta²)² = 1.
*/
func (q *Qubit) BlochCoordinates() (float32, float32, float32) {
	return 2 * q.alpha * q.beta, 0, q.alpha*q.alpha - q.beta*q.beta
}

// Describe renders the state in ket notation with two decimals.
func (q *Qubit) Describe() string {
	return fmt.Sprintf("|ψ⟩ = %.2f|0⟩ + %.2f|1⟩", q.alpha, q.beta)
}

func (q Qubit) String() string {
	return q.Describe()
}
