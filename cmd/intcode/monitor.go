package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/intcodeVM/intcode/pkg/asm"
	"github.com/intcodeVM/intcode/pkg/program"
	"github.com/intcodeVM/intcode/pkg/vm"
)

// monitor is the interactive mode: load a program, poke at its memory,
// run it with inputs typed at the prompt.
func monitor() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "intcode> ",
		HistoryFile: "/tmp/intcode_history",
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	fmt.Println("Intcode monitor. Type help for commands.")

	var image vm.RAM // pristine, as loaded
	var work vm.RAM  // mutated by runs and set

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil { // io.EOF
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch cmd, args := fields[0], fields[1:]; cmd {
		case "load":
			if len(args) != 1 {
				fmt.Println("usage: load <file>")
				continue
			}
			mem, err := loadAny(args[0])
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			image = mem
			work = image.Clone()
			fmt.Printf("Loaded %d words\n", len(image))

		case "run":
			if image == nil {
				fmt.Println("No program loaded")
				continue
			}
			work = image.Clone()
			runInteractive(rl, work, args)

		case "mem":
			if err := printMem(work, args); err != nil {
				fmt.Println("Error:", err)
			}

		case "set":
			if len(args) != 2 {
				fmt.Println("usage: set <addr> <value>")
				continue
			}
			addr, err1 := strconv.Atoi(args[0])
			val, err2 := strconv.ParseInt(args[1], 10, 64)
			if err1 != nil || err2 != nil {
				fmt.Println("usage: set <addr> <value>")
				continue
			}
			if err := work.Write(addr, val); err != nil {
				fmt.Println("Error:", err)
			}

		case "disasm":
			if work == nil {
				fmt.Println("No program loaded")
				continue
			}
			fmt.Print(asm.Disassemble(work))

		case "reset":
			if image == nil {
				fmt.Println("No program loaded")
				continue
			}
			work = image.Clone()

		case "help":
			fmt.Println("  load <file>        load a program or assembly file")
			fmt.Println("  run [v1 v2 ...]    run a fresh copy; extra values feed the input channel")
			fmt.Println("  mem <addr> [n]     show n words starting at addr")
			fmt.Println("  set <addr> <val>   overwrite a memory cell")
			fmt.Println("  disasm             disassemble the working copy")
			fmt.Println("  reset              discard changes to the working copy")
			fmt.Println("  quit               leave the monitor")

		case "quit", "exit":
			return

		default:
			fmt.Printf("Unknown command %q (try help)\n", cmd)
		}
	}
}

// runInteractive runs the working copy. Inputs given as arguments are fed
// first; once exhausted, the Input instruction prompts the user.
func runInteractive(rl *readline.Instance, work vm.RAM, args []string) {
	var queued []int64
	for _, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Printf("Invalid input value %q\n", arg)
			return
		}
		queued = append(queued, v)
	}

	read := func() (int64, error) {
		if len(queued) > 0 {
			v := queued[0]
			queued = queued[1:]
			return v, nil
		}
		rl.SetPrompt("in> ")
		defer rl.SetPrompt("intcode> ")
		line, err := rl.Readline()
		if err != nil {
			return 0, vm.ErrReadingNotSupported
		}
		return strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	}
	write := func(v int64) error {
		fmt.Println(v)
		return nil
	}

	comp := vm.New(work)
	comp.Debug = *flagDebug
	comp.MaxSteps = *flagSteps
	if err := comp.Run(read, write); err != nil {
		fmt.Println("Runtime error:", err)
		return
	}
	fmt.Printf("Halted at ip %d; memory[0] = %s\n", comp.IP(), memAt(work, 0))
}

func printMem(work vm.RAM, args []string) error {
	if work == nil {
		return fmt.Errorf("no program loaded")
	}
	if len(args) == 0 {
		fmt.Println(program.Format(work))
		return nil
	}
	addr, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid address %q", args[0])
	}
	count := 1
	if len(args) > 1 {
		if count, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid count %q", args[1])
		}
	}
	for i := 0; i < count; i++ {
		fmt.Printf("%04d: %s\n", addr+i, memAt(work, addr+i))
	}
	return nil
}

func memAt(work vm.RAM, addr int) string {
	v, err := work.Read(addr)
	if err != nil {
		return "??"
	}
	return strconv.FormatInt(v, 10)
}
