package qsim

import (
	"fmt"
	"strings"
)

// Gate enumerates the operations a circuit instruction can apply.
type Gate uint8

const (
	Hadamard Gate = iota
	PauliX
	PauliY
	PauliZ
	ControlledPhaseShift

	// Measure is a pseudo-gate: it records the target's outcome in the
	// register at that point in the sequence and leaves the amplitudes alone.
	Measure
)

var gateNames = [...]string{
	Hadamard:             "Hadamard",
	PauliX:               "Pauli-X",
	PauliY:               "Pauli-Y",
	PauliZ:               "Pauli-Z",
	ControlledPhaseShift: "Controlled Phase Shift",
	Measure:              "Measure",
}

// gateAliases is keyed by the folded form produced by foldGateName.
var gateAliases = map[string]Gate{
	"hadamard":             Hadamard,
	"h":                    Hadamard,
	"paulix":               PauliX,
	"x":                    PauliX,
	"not":                  PauliX,
	"pauliy":               PauliY,
	"y":                    PauliY,
	"pauliz":               PauliZ,
	"z":                    PauliZ,
	"controlledphaseshift": ControlledPhaseShift,
	"controlledphase":      ControlledPhaseShift,
	"cps":                  ControlledPhaseShift,
	"cp":                   ControlledPhaseShift,
	"measure":              Measure,
	"m":                    Measure,
}

// Gates lists every gate in declaration order.
func Gates() []Gate {
	return []Gate{Hadamard, PauliX, PauliY, PauliZ, ControlledPhaseShift, Measure}
}

func (g Gate) Valid() bool {
	return int(g) < len(gateNames)
}

func (g Gate) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Gate(%d)", uint8(g))
	}

	return gateNames[g]
}

// ParseGate resolves a gate name, ignoring case, spaces, dashes and underscores.
func ParseGate(name string) (Gate, error) {
	if g, ok := gateAliases[foldGateName(name)]; ok {
		return g, nil
	}

	return 0, &MalformedInstructionError{Input: name, Reason: "unknown gate"}
}

func foldGateName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// apply transforms q in place. Measure is handled by the circuit runner.
func (g Gate) apply(q *Qubit, rng Source) error {
	switch g {
	case Hadamard:
		return q.ApplyHadamard()
	case PauliX:
		return q.ApplyPauliX()
	case PauliY:
		return q.ApplyPauliY()
	case PauliZ:
		return q.ApplyPauliZ()
	case ControlledPhaseShift:
		return q.ApplyControlledPhaseShift(rng)
	}

	return fmt.Errorf("apply %v: not a state transform", g)
}
