// intcode runs Intcode programs from comma-separated images or assembly
// text, disassembles them, and provides an interactive monitor.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"unicode"

	"github.com/intcodeVM/intcode/pkg/asm"
	"github.com/intcodeVM/intcode/pkg/program"
	"github.com/intcodeVM/intcode/pkg/vm"
)

var (
	flagDisasm = flag.Bool("disasm", false, "Disassemble instead of run")
	flagDebug  = flag.Bool("debug", false, "Trace every instruction to stderr")
	flagSteps  = flag.Int("steps", 0, "Step limit (0 = unlimited)")
	flagIn     = flag.String("in", "", "Comma-separated input values")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if flag.NArg() == 0 {
		monitor()
		return
	}

	mem, err := loadAny(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	if *flagDisasm {
		fmt.Print(asm.Disassemble(mem))
		return
	}

	var inputs []int64
	if *flagIn != "" {
		if inputs, err = program.Parse(*flagIn); err != nil {
			log.Fatalf("invalid -in values: %v", err)
		}
	}

	comp := vm.New(mem)
	comp.Debug = *flagDebug
	comp.MaxSteps = *flagSteps

	var outputs []int64
	if err := comp.Run(vm.InputValues(inputs...), vm.OutputSlice(&outputs)); err != nil {
		log.Fatalf("runtime error: %v", err)
	}
	for _, v := range outputs {
		fmt.Println(v)
	}
	if v, err := mem.Read(0); err == nil {
		fmt.Fprintf(os.Stderr, "halted; memory[0] = %d\n", v)
	}
}

// loadAny loads either assembly text or a comma-separated program image,
// deciding by content.
func loadAny(path string) (vm.RAM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := string(data)
	if isAssembly(text) {
		mem, err := asm.Assemble(text)
		if err != nil {
			return nil, fmt.Errorf("assembling %s: %w", path, err)
		}
		return mem, nil
	}
	mem, err := program.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return mem, nil
}

// isAssembly reports whether the text is assembly rather than a program
// image. Images contain only digits, signs, commas and whitespace, so any
// letter means assembly.
func isAssembly(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
