// advent runs Advent of Code 2019 solutions. Each solution reads its
// puzzle input from a file argument (or stdin) and prints one answer.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
)

var solutions = make(map[string]func(io.Reader) error)

func register(name string, fn func(io.Reader) error) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		var names []string
		for name := range solutions {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(os.Stderr, "usage: %s <solution> [input-file]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "where solution is one of: %v\n", names)
		os.Exit(1)
	}

	fn, ok := solutions[os.Args[1]]
	if !ok {
		log.Fatalf("unknown solution %q", os.Args[1])
	}

	in := io.Reader(os.Stdin)
	if len(os.Args) > 2 {
		f, err := os.Open(os.Args[2])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	if err := fn(in); err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

// readInts reads one integer per line, skipping blank lines.
func readInts(r io.Reader) ([]int64, error) {
	var ns []int64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}
	return ns, scanner.Err()
}

// readLines reads non-blank lines.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
