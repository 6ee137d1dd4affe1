package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/intcodeVM/intcode/pkg/program"
	"github.com/intcodeVM/intcode/pkg/vm"
)

func init() {
	register("2a", day2a)
	register("2b", day2b)
}

func day2a(in io.Reader) error {
	mem, err := program.Load(in)
	if err != nil {
		return err
	}
	result, err := gravityAssist(mem, 12, 2)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

func day2b(in io.Reader) error {
	mem, err := program.Load(in)
	if err != nil {
		return err
	}
	for noun := int64(0); noun < 99; noun++ {
		for verb := int64(0); verb < 99; verb++ {
			// A faulting combination is just not the answer.
			result, err := gravityAssist(mem, noun, verb)
			if err == nil && result == 19690720 {
				fmt.Println(100*noun + verb)
				return nil
			}
		}
	}
	return errors.New("no noun/verb combination found")
}

// gravityAssist runs a fresh copy of the program with the given noun and
// verb patched in and returns the value left at address 0.
func gravityAssist(mem vm.RAM, noun, verb int64) (int64, error) {
	mem = mem.Clone()
	mem[1] = noun
	mem[2] = verb
	return vm.New(mem).Execute()
}
