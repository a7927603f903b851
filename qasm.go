package qsim

import (
	"fmt"
	"strings"
)

/*
QASM renders the circuit as OpenQASM 2.0 for a register of the given size.
Measurement slot i is written to classical bit c[i]. The controlled phase
shift becomes a measurement followed by a classically conditioned z, which
is what it does here, and the Pauli-Y stand-in is exported as y, which
differs from it by a global phase.

The register is widened to cover every instruction. Negative indices and
unknown gates have no QASM form and fail the export.
*/
func (c *Circuit) QASM(qubits int) (string, error) {
	for _, ins := range c.instructions {
		qubits = max(qubits, ins.Qubit+1)
	}
	qubits = max(qubits, 1)

	if err := c.Validate(qubits); err != nil {
		return "", fmt.Errorf("export qasm: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", qubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", qubits)

	for _, ins := range c.instructions {
		switch ins.Gate {
		case Hadamard:
			fmt.Fprintf(&sb, "h q[%d];\n", ins.Qubit)
		case PauliX:
			fmt.Fprintf(&sb, "x q[%d];\n", ins.Qubit)
		case PauliY:
			fmt.Fprintf(&sb, "y q[%d]; // real stand-in, global phase dropped\n", ins.Qubit)
		case PauliZ:
			fmt.Fprintf(&sb, "z q[%d];\n", ins.Qubit)
		case ControlledPhaseShift:
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", ins.Qubit, ins.Qubit)
			fmt.Fprintf(&sb, "if (c[%d]==1) z q[%d];\n", ins.Qubit, ins.Qubit)
		case Measure:
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", ins.Qubit, ins.Qubit)
		}
	}

	sb.WriteByte('\n')
	for i := 0; i < qubits; i++ {
		fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", i, i)
	}

	return sb.String(), nil
}
