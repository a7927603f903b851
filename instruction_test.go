package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestInstruction(t *testing.T) {
	Convey("Given textual instructions", t, func() {
		Convey("It should parse the canonical form", func() {
			ins, err := ParseInstruction("Qubit 1: Hadamard")
			So(err, ShouldBeNil)
			So(ins, ShouldResemble, Instruction{Qubit: 1, Gate: Hadamard})
		})

		Convey("It should ignore case, spacing and a trailing semicolon", func() {
			ins, err := ParseInstruction("  qubit 0 :  pauli-x; ")
			So(err, ShouldBeNil)
			So(ins, ShouldResemble, Instruction{Qubit: 0, Gate: PauliX})

			ins, err = ParseInstruction("QUBIT 3: controlled_phase_shift")
			So(err, ShouldBeNil)
			So(ins, ShouldResemble, Instruction{Qubit: 3, Gate: ControlledPhaseShift})
		})

		Convey("It should round-trip every gate through String", func() {
			for _, gate := range Gates() {
				ins := Instruction{Qubit: 2, Gate: gate}
				parsed, err := ParseInstruction(ins.String())
				So(err, ShouldBeNil)
				So(parsed, ShouldResemble, ins)
			}
		})

		Convey("It should reject malformed input", func() {
			for _, line := range []string{
				"",
				"Hadamard",
				"Qubit one: Hadamard",
				"Qubit 0 Hadamard",
				"Qubit 0:",
				"Qubit 0: Toffoli",
			} {
				_, err := ParseInstruction(line)
				So(errors.Is(err, ErrMalformedInstruction), ShouldBeTrue)
			}
		})

		Convey("It should name the unknown gate", func() {
			_, err := ParseInstruction("Qubit 0: Toffoli")

			var mie *MalformedInstructionError
			So(errors.As(err, &mie), ShouldBeTrue)
			So(mie.Reason, ShouldContainSubstring, "Toffoli")
		})
	})

	Convey("Given a circuit listing", t, func() {
		text := `
# warm up
Qubit 0: Hadamard
// flip the second qubit
Qubit 1: X

Qubit 0: Measure
`

		c, err := ParseCircuit(text)
		So(err, ShouldBeNil)

		Convey("It should skip blanks and comments", func() {
			So(c.Instructions(), ShouldResemble, []Instruction{
				{Qubit: 0, Gate: Hadamard},
				{Qubit: 1, Gate: PauliX},
				{Qubit: 0, Gate: Measure},
			})
		})

		Convey("It should report the failing line number", func() {
			_, err := ParseCircuit("Qubit 0: H\n\nQubit 1 Hadamard\n")

			var mie *MalformedInstructionError
			So(errors.As(err, &mie), ShouldBeTrue)
			So(mie.Line, ShouldEqual, 3)
			So(err.Error(), ShouldStartWith, "line 3:")
		})
	})

	Convey("Given an instruction list", t, func() {
		c, err := ParseInstructions([]string{"Qubit 0: H", "Qubit 0: Z"})
		So(err, ShouldBeNil)
		So(c.Len(), ShouldEqual, 2)

		_, err = ParseInstructions([]string{"Qubit 0: H", "nonsense"})

		var mie *MalformedInstructionError
		So(errors.As(err, &mie), ShouldBeTrue)
		So(mie.Line, ShouldEqual, 2)
	})

	Convey("Given gate names", t, func() {
		for name, want := range map[string]Gate{
			"H":                      Hadamard,
			"Pauli-Y":                PauliY,
			"pauli z":                PauliZ,
			"CPS":                    ControlledPhaseShift,
			"Controlled Phase Shift": ControlledPhaseShift,
			"m":                      Measure,
		} {
			got, err := ParseGate(name)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, want)
		}

		So(Gate(42).Valid(), ShouldBeFalse)
		So(Gate(42).String(), ShouldEqual, "Gate(42)")
	})
}
