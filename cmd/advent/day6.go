package main

import (
	"fmt"
	"io"
	"strings"
)

func init() {
	register("6a", day6a)
	register("6b", day6b)
}

func day6a(in io.Reader) error {
	parents, err := readOrbits(in)
	if err != nil {
		return err
	}
	fmt.Println(orbitCount(parents))
	return nil
}

func day6b(in io.Reader) error {
	parents, err := readOrbits(in)
	if err != nil {
		return err
	}
	d, err := transferDistance(parents, "YOU", "SAN")
	if err != nil {
		return err
	}
	fmt.Println(d)
	return nil
}

// readOrbits parses A)B lines into a satellite-to-object map.
func readOrbits(in io.Reader) (map[string]string, error) {
	lines, err := readLines(in)
	if err != nil {
		return nil, err
	}
	parents := make(map[string]string, len(lines))
	for _, line := range lines {
		object, satellite, ok := strings.Cut(strings.TrimSpace(line), ")")
		if !ok {
			return nil, fmt.Errorf("invalid orbit %q", line)
		}
		parents[satellite] = object
	}
	return parents, nil
}

// orbitCount totals direct and indirect orbits: every body contributes
// one orbit per ancestor on its chain up to COM.
func orbitCount(parents map[string]string) int {
	total := 0
	for body := range parents {
		for p, ok := parents[body]; ok; p, ok = parents[p] {
			total++
		}
	}
	return total
}

// transferDistance is the number of orbital transfers between the
// objects a and b orbit: the combined distance to their nearest common
// ancestor.
func transferDistance(parents map[string]string, a, b string) (int, error) {
	depths := make(map[string]int)
	d := 0
	for p, ok := parents[a]; ok; p, ok = parents[p] {
		depths[p] = d
		d++
	}
	d = 0
	for p, ok := parents[b]; ok; p, ok = parents[p] {
		if up, shared := depths[p]; shared {
			return up + d, nil
		}
		d++
	}
	return 0, fmt.Errorf("no common ancestor of %s and %s", a, b)
}
