package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQASM(t *testing.T) {
	Convey("Given the bell_pair preset", t, func() {
		c := NewCircuit()
		So(c.LoadPreset("bell_pair"), ShouldBeNil)

		qasm, err := c.QASM(2)
		So(err, ShouldBeNil)

		Convey("It should declare the registers", func() {
			So(qasm, ShouldStartWith, "OPENQASM 2.0;\n")
			So(qasm, ShouldContainSubstring, "qreg q[2];")
			So(qasm, ShouldContainSubstring, "creg c[2];")
		})

		Convey("It should emit the gates and the final measurements", func() {
			So(qasm, ShouldContainSubstring, "h q[0];\nx q[1];\n")
			So(qasm, ShouldEndWith, "measure q[0] -> c[0];\nmeasure q[1] -> c[1];\n")
		})
	})

	Convey("Given a controlled phase shift and a Pauli-Y", t, func() {
		c := NewCircuit()
		c.Append(1, ControlledPhaseShift)
		c.Append(0, PauliY)

		qasm, err := c.QASM(1)
		So(err, ShouldBeNil)

		Convey("It should size the register from the instructions", func() {
			So(qasm, ShouldContainSubstring, "qreg q[2];")
		})

		Convey("It should express the shift as a conditioned z", func() {
			So(qasm, ShouldContainSubstring, "measure q[1] -> c[1];\nif (c[1]==1) z q[1];\n")
		})

		Convey("It should flag the Pauli-Y phase", func() {
			So(qasm, ShouldContainSubstring, "y q[0]; // real stand-in")
		})
	})

	Convey("Given instructions with no QASM form", t, func() {
		Convey("A negative index should fail the export", func() {
			c := NewCircuit()
			c.Append(0, Hadamard)
			c.Append(-1, PauliX)

			qasm, err := c.QASM(2)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
			So(qasm, ShouldBeEmpty)
		})

		Convey("An unknown gate should fail the export", func() {
			c := NewCircuit()
			c.Append(0, Gate(42))

			qasm, err := c.QASM(1)
			So(errors.Is(err, ErrMalformedInstruction), ShouldBeTrue)
			So(qasm, ShouldBeEmpty)
		})
	})
}
