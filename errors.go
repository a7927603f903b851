package qsim

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange      = errors.New("qubit index out of range")
	ErrDegenerateState      = errors.New("degenerate state: amplitudes have zero norm")
	ErrInvalidState         = errors.New("invalid state: both amplitudes are zero")
	ErrUnknownPreset        = errors.New("unknown circuit preset")
	ErrMalformedInstruction = errors.New("malformed instruction")
	ErrRegisterBusy         = errors.New("register is held by a running circuit")
	ErrInvalidConfig        = errors.New("invalid configuration")
)

/*
IndexError reports an instruction or accessor that referenced a register slot
outside [0, Length). Step is the position of the offending instruction inside
a circuit, or -1 when the error came from a direct register access.
*/
type IndexError struct {
	Index  int
	Length int
	Step   int
}

func (e *IndexError) Error() string {
	if e.Step >= 0 {
		return fmt.Sprintf(
			"instruction %d: qubit %d out of range for register of length %d",
			e.Step, e.Index, e.Length,
		)
	}

	return fmt.Sprintf("qubit %d out of range for register of length %d", e.Index, e.Length)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// MalformedInstructionError is returned by the textual instruction parsers.
type MalformedInstructionError struct {
	Line   int
	Input  string
	Reason string
}

func (e *MalformedInstructionError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: malformed instruction %q: %s", e.Line, e.Input, e.Reason)
	}

	return fmt.Sprintf("malformed instruction %q: %s", e.Input, e.Reason)
}

func (e *MalformedInstructionError) Unwrap() error {
	return ErrMalformedInstruction
}
