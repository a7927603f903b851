package qsim

import (
	"fmt"

	"github.com/theapemachine/errnie"
)

/*
Circuit is an ordered recipe of instructions to replay against a register.
It does not know which register it will run on; indices are checked when
Run is called.
*/
type Circuit struct {
	instructions []Instruction
}

func NewCircuit() *Circuit {
	return &Circuit{instructions: make([]Instruction, 0)}
}

// Append adds an instruction to the end of the circuit.
func (c *Circuit) Append(index int, gate Gate) {
	c.instructions = append(c.instructions, Instruction{Qubit: index, Gate: gate})
}

func (c *Circuit) Clear() {
	c.instructions = c.instructions[:0]
}

func (c *Circuit) Len() int {
	return len(c.instructions)
}

// Instructions returns a copy of the instruction list in append order.
func (c *Circuit) Instructions() []Instruction {
	out := make([]Instruction, len(c.instructions))
	copy(out, c.instructions)
	return out
}

// LoadPreset replaces the circuit's contents with the named preset.
func (c *Circuit) LoadPreset(name string) error {
	instructions, err := Preset(name)
	if err != nil {
		return err
	}

	c.instructions = instructions
	return nil
}

// Validate checks every instruction against a register of n qubits without
// running anything.
func (c *Circuit) Validate(n int) error {
	for step, ins := range c.instructions {
		if ins.Qubit < 0 || ins.Qubit >= n {
			return &IndexError{Index: ins.Qubit, Length: n, Step: step}
		}

		if !ins.Gate.Valid() {
			return &MalformedInstructionError{
				Input:  ins.String(),
				Reason: "unknown gate",
			}
		}
	}

	return nil
}

// StepHook observes the register after each instruction has been applied.
type StepHook func(step int, ins Instruction, reg *Register)

type runOptions struct {
	hooks []StepHook
}

// RunOption configures a single call to Run.
type RunOption func(*runOptions)

// WithStepHook registers fn to be called after every applied instruction.
func WithStepHook(fn StepHook) RunOption {
	return func(o *runOptions) {
		o.hooks = append(o.hooks, fn)
	}
}

/*
Run applies every instruction to reg strictly in append order, drawing all
randomness from rng, and then measures every qubit once in index order.

The register length is fixed for the duration of the run: the register is
held, so AddQubit and Reset from a step hook fail with ErrRegisterBusy, and
a second Run against the same register fails the same way.

When an instruction references a slot outside the register, Run returns an
*IndexError. Every instruction before it has already been applied, and the
final measurement pass is skipped.

The final pass overwrites every measurement slot, including outcomes recorded
earlier in the run by Measure instructions.
*/
func (c *Circuit) Run(reg *Register, rng Source, opts ...RunOption) error {
	if !reg.hold() {
		return fmt.Errorf("run circuit: %w", ErrRegisterBusy)
	}
	defer reg.release()

	options := &runOptions{}
	for _, opt := range opts {
		opt(options)
	}

	length := reg.Len()

	errnie.Debug("running circuit: %d instructions on %d qubits", len(c.instructions), length)

	for step, ins := range c.instructions {
		if err := c.step(reg, length, step, ins, rng); err != nil {
			errnie.Warn("circuit stopped at instruction %d (%v): %v", step, ins, err)
			return err
		}

		for _, hook := range options.hooks {
			hook(step, ins, reg)
		}
	}

	for i := 0; i < length; i++ {
		reg.measurements[i] = reg.qubits[i].Measure(rng)
	}

	return nil
}

func (c *Circuit) step(reg *Register, length, step int, ins Instruction, rng Source) error {
	if ins.Qubit < 0 || ins.Qubit >= length {
		return &IndexError{Index: ins.Qubit, Length: length, Step: step}
	}

	q := &reg.qubits[ins.Qubit]

	if ins.Gate == Measure {
		reg.measurements[ins.Qubit] = q.Measure(rng)
		return nil
	}

	if !ins.Gate.Valid() {
		return &MalformedInstructionError{Input: ins.String(), Reason: "unknown gate"}
	}

	if err := ins.Gate.apply(q, rng); err != nil {
		return fmt.Errorf("instruction %d (%v): %w", step, ins, err)
	}

	return nil
}
