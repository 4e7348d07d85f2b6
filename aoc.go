// Package aoc holds the reusable pieces behind a set of Advent of Code
// solutions: a disjoint-set forest over arbitrary comparable values and a
// few quick & dirty helpers for turning puzzle input into values.
package aoc

import (
	"strconv"
	"strings"
)

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Int returns the int value of the string. It panics on malformed input.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// ParseInts is like Ints but reports the first malformed value instead of
// panicking.
func ParseInts(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
