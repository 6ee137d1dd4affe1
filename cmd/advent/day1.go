package main

import (
	"fmt"
	"io"
)

func init() {
	register("1a", day1a)
	register("1b", day1b)
}

func day1a(in io.Reader) error {
	masses, err := readInts(in)
	if err != nil {
		return err
	}
	var total int64
	for _, m := range masses {
		total += fuel(m)
	}
	fmt.Println(total)
	return nil
}

func day1b(in io.Reader) error {
	masses, err := readInts(in)
	if err != nil {
		return err
	}
	var total int64
	for _, m := range masses {
		total += totalFuel(m)
	}
	fmt.Println(total)
	return nil
}

// fuel is mass/3 rounded down, minus 2, floored at zero.
func fuel(mass int64) int64 {
	f := mass/3 - 2
	if f < 0 {
		return 0
	}
	return f
}

// totalFuel also accounts for the fuel needed to carry the fuel itself.
func totalFuel(mass int64) int64 {
	var total int64
	for f := fuel(mass); f > 0; f = fuel(f) {
		total += f
	}
	return total
}
