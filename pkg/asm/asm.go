// Package asm assembles a small textual assembly language into Intcode
// memory images and disassembles images back into text. Grammar is
// defined as Go structs with Participle tags.
//
//	        in  guess           ; read a value into cell "guess"
//	loop:   lt  guess, #100, t  ; t := guess < 100
//	        jnz t, #loop
//	        out guess
//	        hlt
//	guess:  dat 0
//	t:      dat 0
//
// Operands are position-mode cell references by default; a leading #
// marks an immediate. Labels name absolute word addresses and may be
// used in either form.
package asm

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/intcodeVM/intcode/pkg/vm"
)

// Program is the top-level AST node
type Program struct {
	Nodes []*Node `parser:"@@*"`
}

// Node is either a label definition or an instruction
type Node struct {
	Label *string      `parser:"  @Ident \":\""`
	Inst  *Instruction `parser:"| @@"`
}

// Instruction: mnemonic with comma-separated operands
type Instruction struct {
	Mnemonic string     `parser:"@Ident"`
	Operands []*Operand `parser:"(@@ (\",\" @@)*)?"`
}

// Operand: #n or #label (immediate), n or label (position)
type Operand struct {
	Immediate bool    `parser:"@\"#\"?"`
	Number    *int64  `parser:"( @Number"`
	Label     *string `parser:"| @Ident )"`
}

var asmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Number", Pattern: `-?[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[:,#]`},
})

var parser = participle.MustBuild[Program](
	participle.Lexer(asmLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// mnemonics maps text to opcodes
var mnemonics = map[string]vm.OpCode{
	"add":  vm.OpAdd,
	"mul":  vm.OpMultiply,
	"in":   vm.OpInput,
	"read": vm.OpInput,
	"out":  vm.OpOutput,
	"jnz":  vm.OpJumpIfTrue,
	"jt":   vm.OpJumpIfTrue,
	"jz":   vm.OpJumpIfFalse,
	"jf":   vm.OpJumpIfFalse,
	"lt":   vm.OpLessThan,
	"eq":   vm.OpEquals,
	"hlt":  vm.OpHalt,
	"halt": vm.OpHalt,
}

type assembler struct {
	code   vm.RAM
	labels map[string]int
	fixups []fixup
}

// fixup records an operand cell awaiting a label address
type fixup struct {
	pos   int
	label string
}

// Assemble converts assembly text to an Intcode memory image.
func Assemble(source string) (vm.RAM, error) {
	prog, err := parser.ParseString("", source)
	if err != nil {
		return nil, err
	}

	a := &assembler{labels: make(map[string]int)}
	for _, node := range prog.Nodes {
		switch {
		case node.Label != nil:
			name := *node.Label
			if _, ok := a.labels[name]; ok {
				return nil, fmt.Errorf("duplicate label %q", name)
			}
			a.labels[name] = len(a.code)
		case node.Inst != nil:
			if err := a.emit(node.Inst); err != nil {
				return nil, err
			}
		}
	}

	for _, f := range a.fixups {
		addr, ok := a.labels[f.label]
		if !ok {
			return nil, fmt.Errorf("undefined label %q", f.label)
		}
		a.code[f.pos] = int64(addr)
	}

	return a.code, nil
}

func (a *assembler) emit(inst *Instruction) error {
	name := strings.ToLower(inst.Mnemonic)

	if name == "dat" {
		if len(inst.Operands) == 0 {
			return fmt.Errorf("dat needs at least one value")
		}
		for _, operand := range inst.Operands {
			if operand.Immediate {
				return fmt.Errorf("dat takes plain values, not immediates")
			}
			a.emitOperand(operand)
		}
		return nil
	}

	op, ok := mnemonics[name]
	if !ok {
		return fmt.Errorf("unknown mnemonic %q", inst.Mnemonic)
	}
	if len(inst.Operands) != op.Arity() {
		return fmt.Errorf("%s takes %d operands, got %d", name, op.Arity(), len(inst.Operands))
	}

	word := int64(op)
	factor := int64(100)
	for i, operand := range inst.Operands {
		if operand.Immediate {
			if writesOperand(op, i) {
				return fmt.Errorf("%s writes operand %d, which must be a position reference", name, i+1)
			}
			word += factor
		}
		factor *= 10
	}
	a.code = append(a.code, word)

	for _, operand := range inst.Operands {
		a.emitOperand(operand)
	}
	return nil
}

func (a *assembler) emitOperand(operand *Operand) {
	switch {
	case operand.Number != nil:
		a.code = append(a.code, *operand.Number)
	case operand.Label != nil:
		a.fixups = append(a.fixups, fixup{pos: len(a.code), label: *operand.Label})
		a.code = append(a.code, 0)
	}
}

// writesOperand reports whether operand i of op is a destination. The
// machine would fault on an immediate destination anyway; rejecting it
// here gives the error at assembly time.
func writesOperand(op vm.OpCode, i int) bool {
	switch op {
	case vm.OpAdd, vm.OpMultiply, vm.OpLessThan, vm.OpEquals:
		return i == 2
	case vm.OpInput:
		return i == 0
	}
	return false
}
