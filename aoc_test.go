package aoc

import (
	"slices"
	"testing"
)

func TestInts(t *testing.T) {
	tests := []struct {
		in   []string
		want []int
	}{
		{in: []string{"1", " 2", "3 "}, want: []int{1, 2, 3}},
		{in: []string{"-7", "0"}, want: []int{-7, 0}},
		{in: nil, want: nil},
	}

	for _, tt := range tests {
		if got := Ints(tt.in...); !slices.Equal(got, tt.want) {
			t.Errorf("Ints(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseInts(t *testing.T) {
	tests := []struct {
		in      []string
		want    []int
		wantErr bool
	}{
		{in: []string{"162", "817", "812"}, want: []int{162, 817, 812}},
		{in: []string{"1", "x"}, wantErr: true},
		{in: []string{""}, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseInts(tt.in...)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInts(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !slices.Equal(got, tt.want) {
			t.Errorf("ParseInts(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Int(\"nope\") did not panic")
		}
	}()
	Int("nope")
}
