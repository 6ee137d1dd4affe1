// Package vm implements the Intcode virtual machine: a program encoded as
// a flat sequence of signed integers is interpreted in place, with
// input/output delegated to caller-supplied channels.
package vm

import (
	"fmt"
	"io"
	"os"
)

// State is the execution condition reported by a single step.
type State int

const (
	Running State = iota
	Halted
)

// ReadFunc supplies the next value for an Input instruction. It fails
// when no value is available.
type ReadFunc func() (int64, error)

// WriteFunc accepts one value emitted by an Output instruction.
type WriteFunc func(int64) error

// NoInput is the read channel for programs that must not ask for input.
func NoInput() (int64, error) {
	return 0, ErrReadingNotSupported
}

// NoOutput is the write channel for programs that must not emit output.
func NoOutput(int64) error {
	return ErrWritingNotSupported
}

// InputValues returns a read channel yielding the given values in order,
// failing with ErrReadingNotSupported once they are exhausted.
func InputValues(values ...int64) ReadFunc {
	return func() (int64, error) {
		if len(values) == 0 {
			return 0, ErrReadingNotSupported
		}
		v := values[0]
		values = values[1:]
		return v, nil
	}
}

// OutputSlice returns a write channel appending every emitted value to
// *dst, preserving order.
func OutputSlice(dst *[]int64) WriteFunc {
	return func(v int64) error {
		*dst = append(*dst, v)
		return nil
	}
}

// Computer interprets one Intcode program. It owns its Memory for the
// duration of a run and mutates it in place; after a halt or fault the
// instance is done, there is no reuse or resumption. A failed run leaves
// memory partially mutated, so callers must treat it as undefined.
type Computer struct {
	mem Memory
	ip  int

	// MaxSteps aborts a run with a StepLimitError once this many steps
	// have executed. 0 means unlimited.
	MaxSteps int
	steps    int

	// Debug traces every fetched instruction to Output.
	Debug  bool
	Output io.Writer
}

// New creates a Computer over the given memory image with the
// instruction pointer at address 0.
func New(mem Memory) *Computer {
	return &Computer{mem: mem, Output: os.Stderr}
}

// Memory exposes the program image, e.g. for inspecting results after a
// successful run.
func (c *Computer) Memory() Memory { return c.mem }

// IP returns the current instruction pointer.
func (c *Computer) IP() int { return c.ip }

// Step fetches, decodes and executes the single instruction at the
// current instruction pointer. The returned state is Halted for the Halt
// instruction, which leaves the instruction pointer unmoved, and Running
// otherwise. Any failure aborts the step with the instruction pointer
// uncommitted.
func (c *Computer) Step(read ReadFunc, write WriteFunc) (State, error) {
	if c.MaxSteps > 0 {
		c.steps++
		if c.steps > c.MaxSteps {
			return Halted, &StepLimitError{Steps: c.MaxSteps}
		}
	}

	word, err := c.mem.Read(c.ip)
	if err != nil {
		return Halted, err
	}
	op, modes, err := Decode(word)
	if err != nil {
		return Halted, err
	}

	if c.Debug {
		fmt.Fprintf(c.Output, "%04d: %s\n", c.ip, op)
	}

	// Operands are consumed through a local cursor; it becomes the new
	// ip only when the whole instruction succeeds. Jumps overwrite it.
	cursor := c.ip + 1
	arg := 0
	next := func() (int, Mode) {
		addr, mode := cursor, modes[arg]
		cursor++
		arg++
		return addr, mode
	}
	load := func() (int64, error) {
		addr, mode := next()
		return c.load(addr, mode)
	}
	store := func(value int64) error {
		addr, mode := next()
		return c.store(addr, mode, value)
	}

	switch op {
	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		a, err := load()
		if err != nil {
			return Halted, err
		}
		b, err := load()
		if err != nil {
			return Halted, err
		}
		var res int64
		switch op {
		case OpAdd:
			res = a + b
		case OpMultiply:
			res = a * b
		case OpLessThan:
			if a < b {
				res = 1
			}
		case OpEquals:
			if a == b {
				res = 1
			}
		}
		if err := store(res); err != nil {
			return Halted, err
		}

	case OpInput:
		v, err := read()
		if err != nil {
			return Halted, err
		}
		if err := store(v); err != nil {
			return Halted, err
		}

	case OpOutput:
		v, err := load()
		if err != nil {
			return Halted, err
		}
		if err := write(v); err != nil {
			return Halted, err
		}

	case OpJumpIfTrue, OpJumpIfFalse:
		cond, err := load()
		if err != nil {
			return Halted, err
		}
		target, err := load()
		if err != nil {
			return Halted, err
		}
		if (cond != 0) == (op == OpJumpIfTrue) {
			cursor = int(target)
		}

	case OpHalt:
		return Halted, nil
	}

	c.ip = cursor
	return Running, nil
}

// Run executes steps until the program halts, using the caller's
// channels for the Input and Output instructions. The first failure
// aborts the run and is surfaced unchanged.
func (c *Computer) Run(read ReadFunc, write WriteFunc) error {
	for {
		state, err := c.Step(read, write)
		if err != nil {
			return err
		}
		if state == Halted {
			return nil
		}
	}
}

// Execute runs a program known to perform no I/O and returns the value
// left at address 0. Reaching an Input or Output instruction faults.
func (c *Computer) Execute() (int64, error) {
	if err := c.Run(NoInput, NoOutput); err != nil {
		return 0, err
	}
	return c.mem.Read(0)
}

// load resolves a read operand through its mode.
func (c *Computer) load(address int, mode Mode) (int64, error) {
	value, err := c.mem.Read(address)
	if err != nil {
		return 0, err
	}
	if mode == Immediate {
		return value, nil
	}
	return c.mem.Read(int(value))
}

// store resolves a write operand, which must be in position mode.
func (c *Computer) store(address int, mode Mode, value int64) error {
	if mode != Position {
		return &InvalidWriteModeError{Mode: mode}
	}
	dest, err := c.mem.Read(address)
	if err != nil {
		return err
	}
	return c.mem.Write(int(dest), value)
}
