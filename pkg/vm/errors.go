package vm

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by I/O channels that are not wired for the
// direction the program asked for. InputValues also returns
// ErrReadingNotSupported once its values are exhausted.
var (
	ErrReadingNotSupported = errors.New("reading is not supported")
	ErrWritingNotSupported = errors.New("writing is not supported")
)

// SegFaultError reports a memory access outside the program image.
// Program images are fixed-size; storage is never grown on demand.
type SegFaultError struct {
	Address int
}

func (e *SegFaultError) Error() string {
	return fmt.Sprintf("segfault: address %d out of bounds", e.Address)
}

// InvalidOpCodeError reports an instruction word whose low two decimal
// digits are not in the opcode table.
type InvalidOpCodeError struct {
	Value int64
}

func (e *InvalidOpCodeError) Error() string {
	return fmt.Sprintf("invalid opcode %d", e.Value)
}

// InvalidModeError reports a parameter-mode digit outside {0,1}.
type InvalidModeError struct {
	Digit int64
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid parameter mode %d", e.Digit)
}

// InvalidWriteModeError reports an attempt to write through a parameter
// that is not in position mode.
type InvalidWriteModeError struct {
	Mode Mode
}

func (e *InvalidWriteModeError) Error() string {
	return fmt.Sprintf("invalid write mode %s", e.Mode)
}

// StepLimitError reports that a run exceeded the Computer's MaxSteps
// budget before halting.
type StepLimitError struct {
	Steps int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("step limit reached after %d steps", e.Steps)
}
