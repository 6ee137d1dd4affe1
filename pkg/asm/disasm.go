package asm

import (
	"fmt"
	"strings"

	"github.com/intcodeVM/intcode/pkg/vm"
)

// Disassemble renders a memory image as assembly-like text. Intcode mixes
// code and data in one address space, so this is a best-effort linear
// walk: any word that does not decode as an instruction, or whose
// operands would run past the end of the image, is printed as dat.
func Disassemble(mem []int64) string {
	var sb strings.Builder
	pc := 0

	for pc < len(mem) {
		word := mem[pc]
		fmt.Fprintf(&sb, "%04d: ", pc)

		op, modes, err := vm.Decode(word)
		if err != nil || pc+op.Arity() >= len(mem) {
			fmt.Fprintf(&sb, "dat %d\n", word)
			pc++
			continue
		}

		sb.WriteString(op.String())
		for i := 0; i < op.Arity(); i++ {
			if i == 0 {
				sb.WriteString(" ")
			} else {
				sb.WriteString(", ")
			}
			operand := mem[pc+1+i]
			if modes[i] == vm.Immediate {
				fmt.Fprintf(&sb, "#%d", operand)
			} else {
				fmt.Fprintf(&sb, "%d", operand)
			}
		}
		sb.WriteString("\n")
		pc += 1 + op.Arity()
	}

	return sb.String()
}
