package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func init() {
	register("3a", day3a)
	register("3b", day3b)
}

func day3a(in io.Reader) error {
	first, second, err := readWires(in)
	if err != nil {
		return err
	}
	best, err := closestIntersection(first, second)
	if err != nil {
		return err
	}
	fmt.Println(best)
	return nil
}

func day3b(in io.Reader) error {
	first, second, err := readWires(in)
	if err != nil {
		return err
	}
	best, err := fewestSteps(first, second)
	if err != nil {
		return err
	}
	fmt.Println(best)
	return nil
}

// closestIntersection is the smallest Manhattan distance from the
// central port to a point both wires visit.
func closestIntersection(first, second map[point]int) (int, error) {
	best := -1
	for p := range first {
		if _, ok := second[p]; !ok {
			continue
		}
		if d := abs(p.x) + abs(p.y); best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0, errors.New("no intersections found")
	}
	return best, nil
}

// fewestSteps is the smallest combined step count at which both wires
// reach a shared point.
func fewestSteps(first, second map[point]int) (int, error) {
	best := -1
	for p, steps := range first {
		other, ok := second[p]
		if !ok {
			continue
		}
		if d := steps + other; best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0, errors.New("no intersections found")
	}
	return best, nil
}

type point struct {
	x, y int
}

func readWires(in io.Reader) (map[point]int, map[point]int, error) {
	lines, err := readLines(in)
	if err != nil {
		return nil, nil, err
	}
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("expected 2 wires, got %d", len(lines))
	}
	first, err := traceWire(strings.Split(lines[0], ","))
	if err != nil {
		return nil, nil, err
	}
	second, err := traceWire(strings.Split(lines[1], ","))
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

// traceWire walks the wire from the central port, recording the step
// count at which each point is first visited. The port itself is not a
// point on the wire.
func traceWire(segments []string) (map[point]int, error) {
	visited := make(map[point]int)
	var p point
	steps := 0
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if len(seg) < 2 {
			return nil, fmt.Errorf("invalid segment %q", seg)
		}
		length, err := strconv.Atoi(seg[1:])
		if err != nil {
			return nil, fmt.Errorf("invalid segment %q", seg)
		}
		var dx, dy int
		switch seg[0] {
		case 'R':
			dx = 1
		case 'L':
			dx = -1
		case 'U':
			dy = 1
		case 'D':
			dy = -1
		default:
			return nil, fmt.Errorf("invalid segment %q", seg)
		}
		for i := 0; i < length; i++ {
			p.x += dx
			p.y += dy
			steps++
			if _, ok := visited[p]; !ok {
				visited[p] = steps
			}
		}
	}
	return visited, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
