package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func init() {
	register("4a", day4a)
	register("4b", day4b)
}

func day4a(in io.Reader) error {
	return day4(in, false)
}

func day4b(in io.Reader) error {
	return day4(in, true)
}

func day4(in io.Reader, exactPair bool) error {
	lo, hi, err := readRange(in)
	if err != nil {
		return err
	}
	count := 0
	for n := lo; n <= hi; n++ {
		if validPassword(n, exactPair) {
			count++
		}
	}
	fmt.Println(count)
	return nil
}

func readRange(in io.Reader) (int, int, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return 0, 0, err
	}
	loText, hiText, ok := strings.Cut(strings.TrimSpace(string(data)), "-")
	if !ok {
		return 0, 0, fmt.Errorf("expected lo-hi range, got %q", data)
	}
	lo, err := strconv.Atoi(loText)
	if err != nil {
		return 0, 0, err
	}
	hi, err := strconv.Atoi(hiText)
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// validPassword: six digits, digits never decrease left to right, and at
// least one run of equal adjacent digits. With exactPair the run must be
// exactly two long.
func validPassword(n int, exactPair bool) bool {
	s := strconv.Itoa(n)
	if len(s) != 6 {
		return false
	}
	pair := false
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
		if s[i] == s[i-1] {
			run++
			continue
		}
		if run == 2 || (!exactPair && run > 1) {
			pair = true
		}
		run = 1
	}
	if run == 2 || (!exactPair && run > 1) {
		pair = true
	}
	return pair
}
