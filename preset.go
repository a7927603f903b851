package qsim

import (
	"fmt"
	"sort"
)

/*
presetLibrary holds the named circuits a front end can request. The names are
teaching labels: with independent real-amplitude qubits none of these
reproduce the algorithm they are named after. bell_pair does not entangle,
and teleportation_like moves no state between qubits.
*/
var presetLibrary = map[string]struct {
	description  string
	instructions []Instruction
}{
	"bell_pair": {
		description: "Hadamard on qubit 0, Pauli-X on qubit 1. Independent qubits, no entanglement.",
		instructions: []Instruction{
			{Qubit: 0, Gate: Hadamard},
			{Qubit: 1, Gate: PauliX},
		},
	},
	"qft_like": {
		description: "Hadamard on qubit 0, controlled phase shift on qubit 1. Not a Fourier transform.",
		instructions: []Instruction{
			{Qubit: 0, Gate: Hadamard},
			{Qubit: 1, Gate: ControlledPhaseShift},
		},
	},
	"grover_like": {
		description: "Superpose both qubits, flip qubit 0, phase-shift qubit 1. No oracle or diffusion step.",
		instructions: []Instruction{
			{Qubit: 0, Gate: Hadamard},
			{Qubit: 1, Gate: Hadamard},
			{Qubit: 0, Gate: PauliX},
			{Qubit: 1, Gate: ControlledPhaseShift},
		},
	},
	"teleportation_like": {
		description: "Mid-circuit measurement of qubit 0 between gates. No state is transferred.",
		instructions: []Instruction{
			{Qubit: 0, Gate: Hadamard},
			{Qubit: 1, Gate: ControlledPhaseShift},
			{Qubit: 0, Gate: Measure},
			{Qubit: 1, Gate: PauliX},
		},
	},
}

// Presets returns the preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presetLibrary))
	for name := range presetLibrary {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Preset returns a fresh copy of the named preset's instructions.
func Preset(name string) ([]Instruction, error) {
	preset, ok := presetLibrary[name]
	if !ok {
		return nil, fmt.Errorf("preset %q: %w", name, ErrUnknownPreset)
	}

	out := make([]Instruction, len(preset.instructions))
	copy(out, preset.instructions)
	return out, nil
}

// PresetDescription explains what the named preset actually does.
func PresetDescription(name string) (string, error) {
	preset, ok := presetLibrary[name]
	if !ok {
		return "", fmt.Errorf("preset %q: %w", name, ErrUnknownPreset)
	}

	return preset.description, nil
}
