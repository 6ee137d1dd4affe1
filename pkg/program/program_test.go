package program

import (
	"reflect"
	"strings"
	"testing"

	"github.com/intcodeVM/intcode/pkg/vm"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected vm.RAM
	}{
		{"plain", "1,0,0,0,99", vm.RAM{1, 0, 0, 0, 99}},
		{"trailing newline", "1,2,3\n", vm.RAM{1, 2, 3}},
		{"negative values", "1101,100,-1,4,0", vm.RAM{1101, 100, -1, 4, 0}},
		{"spaces around values", " 1 , 2 , 3 ", vm.RAM{1, 2, 3}},
		{"single value", "99", vm.RAM{99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !reflect.DeepEqual(mem, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, mem)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{"", "1,,2", "1,x,2", "1.5,2"} {
		if _, err := Parse(text); err == nil {
			t.Errorf("Parse(%q): expected error", text)
		}
	}
}

func TestLoad(t *testing.T) {
	mem, err := Load(strings.NewReader("1,9,10,3,2,3,11,0,99,30,40,50\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(mem) != 12 {
		t.Errorf("Expected 12 values, got %d", len(mem))
	}
}

func TestFormatRoundTrip(t *testing.T) {
	text := "1101,100,-1,4,0"
	mem, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Format(mem); got != text {
		t.Errorf("Expected %q, got %q", text, got)
	}
}
