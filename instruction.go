package qsim

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var instructionRegex = regexp.MustCompile(`^(?i:qubit)\s+(-?\d+)\s*:\s*(.*?)\s*;?$`)

// Instruction applies Gate to the register slot at Qubit.
type Instruction struct {
	Qubit int
	Gate  Gate
}

// String renders the instruction in the form ParseInstruction accepts,
// for example "Qubit 1: Hadamard".
func (ins Instruction) String() string {
	return fmt.Sprintf("Qubit %d: %s", ins.Qubit, ins.Gate)
}

/*
ParseInstruction reads the textual form "Qubit <index>: <gate>". The index is
the 0-based register slot; the gate name goes through ParseGate. Negative
indices parse, and are rejected when the circuit runs.
*/
func ParseInstruction(line string) (Instruction, error) {
	text := strings.TrimSpace(line)

	matches := instructionRegex.FindStringSubmatch(text)
	if matches == nil {
		return Instruction{}, &MalformedInstructionError{
			Input:  line,
			Reason: `expected "Qubit <index>: <gate>"`,
		}
	}

	index, err := strconv.Atoi(matches[1])
	if err != nil {
		return Instruction{}, &MalformedInstructionError{Input: line, Reason: err.Error()}
	}

	if matches[2] == "" {
		return Instruction{}, &MalformedInstructionError{Input: line, Reason: "missing gate"}
	}

	gate, err := ParseGate(matches[2])
	if err != nil {
		return Instruction{}, &MalformedInstructionError{
			Input:  line,
			Reason: fmt.Sprintf("unknown gate %q", matches[2]),
		}
	}

	return Instruction{Qubit: index, Gate: gate}, nil
}

// ParseCircuit reads one instruction per line. Blank lines and lines starting
// with "#" or "//" are skipped. Errors carry the 1-based line number.
func ParseCircuit(text string) (*Circuit, error) {
	c := NewCircuit()
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		ins, err := ParseInstruction(line)
		if err != nil {
			if mie, ok := err.(*MalformedInstructionError); ok {
				mie.Line = lineNo
			}
			return nil, err
		}

		c.Append(ins.Qubit, ins.Gate)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse circuit: %w", err)
	}

	return c, nil
}

// ParseInstructions parses a list of textual instructions, as found in a
// configuration file, into a circuit.
func ParseInstructions(lines []string) (*Circuit, error) {
	c := NewCircuit()

	for i, line := range lines {
		ins, err := ParseInstruction(line)
		if err != nil {
			if mie, ok := err.(*MalformedInstructionError); ok {
				mie.Line = i + 1
			}
			return nil, err
		}

		c.Append(ins.Qubit, ins.Gate)
	}

	return c, nil
}
