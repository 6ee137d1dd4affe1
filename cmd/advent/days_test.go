package main

import (
	"strings"
	"testing"

	"github.com/intcodeVM/intcode/pkg/vm"
)

func TestFuel(t *testing.T) {
	tests := []struct {
		mass, fuel, total int64
	}{
		{12, 2, 2},
		{14, 2, 2},
		{1969, 654, 966},
		{100756, 33583, 50346},
		{2, 0, 0},
	}
	for _, tt := range tests {
		if got := fuel(tt.mass); got != tt.fuel {
			t.Errorf("fuel(%d): expected %d, got %d", tt.mass, tt.fuel, got)
		}
		if got := totalFuel(tt.mass); got != tt.total {
			t.Errorf("totalFuel(%d): expected %d, got %d", tt.mass, tt.total, got)
		}
	}
}

func TestGravityAssist(t *testing.T) {
	mem := vm.RAM{1, 0, 0, 0, 99}
	result, err := gravityAssist(mem, 0, 0)
	if err != nil {
		t.Fatalf("gravityAssist: %v", err)
	}
	if result != 2 {
		t.Errorf("Expected 2, got %d", result)
	}
	// The search patches a fresh copy each time.
	if mem[1] != 0 || mem[2] != 0 {
		t.Errorf("Original image was mutated: %v", mem)
	}
}

func TestWires(t *testing.T) {
	tests := []struct {
		first, second   string
		distance, steps int
	}{
		{
			"R8,U5,L5,D3",
			"U7,R6,D4,L4",
			6, 30,
		},
		{
			"R75,D30,R83,U83,L12,D49,R71,U7,L72",
			"U62,R66,U55,R34,D71,R55,D58,R83",
			159, 610,
		},
		{
			"R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51",
			"U98,R91,D20,R16,D67,R40,U7,R15,U6,R7",
			135, 410,
		},
	}

	for _, tt := range tests {
		first, err := traceWire(strings.Split(tt.first, ","))
		if err != nil {
			t.Fatalf("traceWire: %v", err)
		}
		second, err := traceWire(strings.Split(tt.second, ","))
		if err != nil {
			t.Fatalf("traceWire: %v", err)
		}
		if got, err := closestIntersection(first, second); err != nil || got != tt.distance {
			t.Errorf("closestIntersection: expected %d, got %d (%v)", tt.distance, got, err)
		}
		if got, err := fewestSteps(first, second); err != nil || got != tt.steps {
			t.Errorf("fewestSteps: expected %d, got %d (%v)", tt.steps, got, err)
		}
	}
}

func TestTraceWireRejectsBadSegments(t *testing.T) {
	for _, seg := range []string{"X5", "R", "U1x", ""} {
		if _, err := traceWire([]string{seg}); err == nil {
			t.Errorf("traceWire(%q): expected error", seg)
		}
	}
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		n         int
		plain     bool
		exactPair bool
	}{
		{111111, true, false},
		{223450, false, false},
		{123789, false, false},
		{122345, true, true},
		{112233, true, true},
		{123444, true, false},
		{111122, true, true},
	}
	for _, tt := range tests {
		if got := validPassword(tt.n, false); got != tt.plain {
			t.Errorf("validPassword(%d, false): expected %t, got %t", tt.n, tt.plain, got)
		}
		if got := validPassword(tt.n, true); got != tt.exactPair {
			t.Errorf("validPassword(%d, true): expected %t, got %t", tt.n, tt.exactPair, got)
		}
	}
}

func TestDiagnostic(t *testing.T) {
	// Emits a passing zero, then echoes the system ID as the code.
	mem := vm.RAM{104, 0, 3, 9, 4, 9, 99, 0, 0, 0}
	code, err := diagnostic(mem, 5)
	if err != nil {
		t.Fatalf("diagnostic: %v", err)
	}
	if code != 5 {
		t.Errorf("Expected diagnostic code 5, got %d", code)
	}
}

func TestDiagnosticRejectsTrailingOutput(t *testing.T) {
	// A non-zero code followed by another output is a failed test run.
	mem := vm.RAM{104, 7, 104, 0, 99}
	if _, err := diagnostic(mem, 1); err == nil {
		t.Error("Expected error for output after the diagnostic code")
	}
}

func TestOrbits(t *testing.T) {
	input := `COM)B
B)C
C)D
D)E
E)F
B)G
G)H
D)I
E)J
J)K
K)L`
	parents, err := readOrbits(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readOrbits: %v", err)
	}
	if got := orbitCount(parents); got != 42 {
		t.Errorf("orbitCount: expected 42, got %d", got)
	}
}

func TestTransferDistance(t *testing.T) {
	input := `COM)B
B)C
C)D
D)E
E)F
B)G
G)H
D)I
E)J
J)K
K)L
K)YOU
I)SAN`
	parents, err := readOrbits(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readOrbits: %v", err)
	}
	d, err := transferDistance(parents, "YOU", "SAN")
	if err != nil {
		t.Fatalf("transferDistance: %v", err)
	}
	if d != 4 {
		t.Errorf("Expected 4 transfers, got %d", d)
	}
}
