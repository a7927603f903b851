package qsim

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/theapemachine/errnie"
)

/*
Register is an ordered, index-addressed collection of independent qubits,
together with the last measured outcome of each slot. Both sequences always
have the same length, and a register is never empty.

A Register is owned by a single caller; it does no locking of its own. While
a circuit runs against it the register is held, and AddQubit and Reset are
refused until the run finishes.
*/
type Register struct {
	qubits       []Qubit
	measurements []Outcome
	held         bool
}

// NewRegister returns a register holding a single |0⟩ qubit.
func NewRegister() *Register {
	return &Register{
		qubits:       []Qubit{NewQubit()},
		measurements: []Outcome{Unmeasured},
	}
}

// NewRegisterOf returns a register holding n qubits in |0⟩.
func NewRegisterOf(n int) (*Register, error) {
	if n < 1 {
		return nil, fmt.Errorf("register of %d qubits: %w", n, ErrInvalidConfig)
	}

	r := NewRegister()

	for r.Len() < n {
		if err := r.AddQubit(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Register) Len() int {
	return len(r.qubits)
}

// AddQubit appends a |0⟩ qubit with no recorded measurement.
func (r *Register) AddQubit() error {
	if r.held {
		return fmt.Errorf("add qubit: %w", ErrRegisterBusy)
	}

	r.qubits = append(r.qubits, NewQubit())
	r.measurements = append(r.measurements, Unmeasured)
	errnie.Debug("register grown to %d qubits", len(r.qubits))

	return nil
}

// Reset truncates the register back to a single |0⟩ qubit.
func (r *Register) Reset() error {
	if r.held {
		return fmt.Errorf("reset register: %w", ErrRegisterBusy)
	}

	r.qubits = []Qubit{NewQubit()}
	r.measurements = []Outcome{Unmeasured}
	errnie.Debug("register reset")

	return nil
}

// Get returns a copy of the qubit at index.
func (r *Register) Get(index int) (Qubit, error) {
	if err := r.check(index); err != nil {
		return Qubit{}, err
	}

	return r.qubits[index], nil
}

// GetMutable returns the qubit at index for in-place gate application.
func (r *Register) GetMutable(index int) (*Qubit, error) {
	if err := r.check(index); err != nil {
		return nil, err
	}

	return &r.qubits[index], nil
}

func (r *Register) SetMeasurement(index int, outcome Outcome) error {
	if err := r.check(index); err != nil {
		return err
	}

	r.measurements[index] = outcome
	return nil
}

// MeasurementOf returns the last recorded outcome at index, or Unmeasured.
func (r *Register) MeasurementOf(index int) (Outcome, error) {
	if err := r.check(index); err != nil {
		return Unmeasured, err
	}

	return r.measurements[index], nil
}

// Qubits returns a snapshot of every qubit in index order.
func (r *Register) Qubits() []Qubit {
	out := make([]Qubit, len(r.qubits))
	copy(out, r.qubits)
	return out
}

// Measurements returns a snapshot of every measurement slot in index order.
func (r *Register) Measurements() []Outcome {
	out := make([]Outcome, len(r.measurements))
	copy(out, r.measurements)
	return out
}

// Dump renders the full register, amplitudes included, for debug output.
func (r *Register) Dump() string {
	return spew.Sdump(r.qubits, r.measurements)
}

func (r *Register) check(index int) error {
	if index < 0 || index >= len(r.qubits) {
		return &IndexError{Index: index, Length: len(r.qubits), Step: -1}
	}

	return nil
}

// hold marks the register as in use by a run and reports whether it was free.
func (r *Register) hold() bool {
	if r.held {
		return false
	}

	r.held = true
	return true
}

func (r *Register) release() {
	r.held = false
}
