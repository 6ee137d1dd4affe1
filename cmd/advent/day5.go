package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/intcodeVM/intcode/pkg/program"
	"github.com/intcodeVM/intcode/pkg/vm"
)

func init() {
	register("5a", day5a)
	register("5b", day5b)
}

func day5a(in io.Reader) error {
	return day5(in, 1)
}

func day5b(in io.Reader) error {
	return day5(in, 5)
}

func day5(in io.Reader, systemID int64) error {
	mem, err := program.Load(in)
	if err != nil {
		return err
	}
	code, err := diagnostic(mem, systemID)
	if err != nil {
		return err
	}
	fmt.Println(code)
	return nil
}

// diagnostic runs the TEST program with the given system ID. The
// program emits zeroes for every passing check and finishes with a
// single non-zero diagnostic code; anything else is a failure.
func diagnostic(mem vm.RAM, systemID int64) (int64, error) {
	var out []int64
	if err := vm.New(mem.Clone()).Run(vm.InputValues(systemID), vm.OutputSlice(&out)); err != nil {
		return 0, err
	}
	var code int64
	for _, v := range out {
		if code != 0 {
			return 0, fmt.Errorf("unexpected output %d after diagnostic code %d", v, code)
		}
		code = v
	}
	if code == 0 {
		return 0, errors.New("no diagnostic code produced")
	}
	return code, nil
}
