package scalar

import (
	"fmt"
	"testing"
)

type formatted []float32

func (f formatted) Format(s fmt.State, verb rune) {
	WriteFormatted[float32](s, verb, f...)
}

func TestFormatComponent(t *testing.T) {
	for _, tc := range []struct {
		got, want string
	}{
		{FormatComponent[uint8](255), "255"},
		{FormatComponent[int64](-42), "-42"},
		{FormatComponent[float32](0.1), "0.1"},
		{FormatComponent(2.5), "2.5"},
	} {
		if tc.got != tc.want {
			t.Fatalf("FormatComponent = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestFormatVector(t *testing.T) {
	if got := FormatVector[int16](1, -2, 3, 4); got != "X:1 Y:-2 Z:3 W:4" {
		t.Fatalf("FormatVector = %q", got)
	}
}

func TestWriteFormatted(t *testing.T) {
	v := formatted{1, 2.5}
	for _, tc := range []struct {
		format, want string
	}{
		{"%v", "X:1 Y:2.5"},
		{"%s", "X:1 Y:2.5"},
		{"%.2f", "X:1.00 Y:2.50"},
		{"%5.1f", "X:  1.0 Y:  2.5"},
		{"%e", "X:1.000000e+00 Y:2.500000e+00"},
	} {
		if got := fmt.Sprintf(tc.format, v); got != tc.want {
			t.Fatalf("Sprintf(%q) = %q, want %q", tc.format, got, tc.want)
		}
	}
}
