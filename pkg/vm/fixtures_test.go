package vm_test

import (
	"os"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/intcodeVM/intcode/pkg/program"
	"github.com/intcodeVM/intcode/pkg/vm"
)

type fixture struct {
	Name    string  `yaml:"name"`
	Program string  `yaml:"program"`
	Input   []int64 `yaml:"input"`
	Output  []int64 `yaml:"output"`
	Memory0 *int64  `yaml:"memory0"`
	Final   string  `yaml:"final"`
}

func TestProgramFixtures(t *testing.T) {
	data, err := os.ReadFile("testdata/programs.yaml")
	if err != nil {
		t.Fatalf("Reading fixtures: %v", err)
	}
	var fixtures []fixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("Parsing fixtures: %v", err)
	}

	for _, fx := range fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			mem, err := program.Parse(fx.Program)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}

			var out []int64
			comp := vm.New(mem)
			if err := comp.Run(vm.InputValues(fx.Input...), vm.OutputSlice(&out)); err != nil {
				t.Fatalf("Run: %v", err)
			}

			if fx.Output != nil && !reflect.DeepEqual(out, fx.Output) {
				t.Errorf("Expected output %v, got %v", fx.Output, out)
			}
			if fx.Memory0 != nil {
				v, err := mem.Read(0)
				if err != nil {
					t.Fatalf("Read(0): %v", err)
				}
				if v != *fx.Memory0 {
					t.Errorf("Expected %d at address 0, got %d", *fx.Memory0, v)
				}
			}
			if fx.Final != "" {
				want, err := program.Parse(fx.Final)
				if err != nil {
					t.Fatalf("Parse final: %v", err)
				}
				if !reflect.DeepEqual(mem, want) {
					t.Errorf("Expected final memory %v, got %v", want, mem)
				}
			}
		})
	}
}
