package vm

import "fmt"

// OpCode selects an instruction effect. It is encoded as the low two
// decimal digits of the fetched instruction word.
type OpCode int64

const (
	OpAdd         OpCode = 1  // a b dest: dest := a + b
	OpMultiply    OpCode = 2  // a b dest: dest := a * b
	OpInput       OpCode = 3  // dest: dest := next input value
	OpOutput      OpCode = 4  // a: emit a
	OpJumpIfTrue  OpCode = 5  // cond target: if cond != 0, ip := target
	OpJumpIfFalse OpCode = 6  // cond target: if cond == 0, ip := target
	OpLessThan    OpCode = 7  // a b dest: dest := a < b
	OpEquals      OpCode = 8  // a b dest: dest := a == b
	OpHalt        OpCode = 99 // stop execution
)

// Arity returns how many operands the opcode consumes.
func (op OpCode) Arity() int {
	switch op {
	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		return 3
	case OpJumpIfTrue, OpJumpIfFalse:
		return 2
	case OpInput, OpOutput:
		return 1
	}
	return 0
}

// String returns the assembler mnemonic for the opcode.
func (op OpCode) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpMultiply:
		return "mul"
	case OpInput:
		return "in"
	case OpOutput:
		return "out"
	case OpJumpIfTrue:
		return "jnz"
	case OpJumpIfFalse:
		return "jz"
	case OpLessThan:
		return "lt"
	case OpEquals:
		return "eq"
	case OpHalt:
		return "hlt"
	}
	return fmt.Sprintf("op(%d)", int64(op))
}

// Decode splits an instruction word into its opcode and per-operand modes.
// The low two decimal digits select the opcode; the remaining digits are
// consumed least-significant first, one per operand in instruction order.
// Missing digits default to position mode, extra digits beyond the
// opcode's arity are ignored.
func Decode(word int64) (OpCode, []Mode, error) {
	op, err := decodeOpCode(word % 100)
	if err != nil {
		return 0, nil, err
	}
	rest := word / 100
	modes := make([]Mode, op.Arity())
	for i := range modes {
		m, err := modeFor(rest % 10)
		if err != nil {
			return 0, nil, err
		}
		modes[i] = m
		rest /= 10
	}
	return op, modes, nil
}

func decodeOpCode(value int64) (OpCode, error) {
	switch op := OpCode(value); op {
	case OpAdd, OpMultiply, OpInput, OpOutput,
		OpJumpIfTrue, OpJumpIfFalse, OpLessThan, OpEquals, OpHalt:
		return op, nil
	}
	return 0, &InvalidOpCodeError{Value: value}
}
