// Package program loads Intcode programs from their on-disk encoding: a
// comma-separated ASCII list of signed decimal integers, optionally with
// surrounding whitespace.
package program

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/intcodeVM/intcode/pkg/vm"
)

// Parse converts the text encoding into a memory image.
func Parse(text string) (vm.RAM, error) {
	fields := strings.Split(strings.TrimSpace(text), ",")
	mem := make(vm.RAM, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid program value %q", field)
		}
		mem = append(mem, n)
	}
	return mem, nil
}

// Load parses a program from a reader.
func Load(r io.Reader) (vm.RAM, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// LoadFile parses a program from a file.
func LoadFile(path string) (vm.RAM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// Format renders a memory image back to its text encoding.
func Format(mem []int64) string {
	parts := make([]string, len(mem))
	for i, v := range mem {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}
