package vm

import "fmt"

// Mode tags how a single operand is interpreted. Each operand carries its
// own mode, peeled from the instruction word's upper decimal digits.
type Mode int

const (
	// Position treats the operand as an address whose contents are the
	// real value.
	Position Mode = 0
	// Immediate treats the operand as the value itself. Writing through
	// an immediate operand is invalid.
	Immediate Mode = 1
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func modeFor(digit int64) (Mode, error) {
	switch digit {
	case 0:
		return Position, nil
	case 1:
		return Immediate, nil
	}
	return 0, &InvalidModeError{Digit: digit}
}
