package main

import (
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "add", args: []string{"add", "10.5", "2"}, expected: "12.5"},
		{name: "subtract", args: []string{"subtract", "10.5", "2"}, expected: "8.5"},
		{name: "multiply", args: []string{"multiply", "10.5", "2"}, expected: "21"},
		{name: "divide", args: []string{"divide", "10.5", "2"}, expected: "5.25"},
		{name: "divide by zero", args: []string{"divide", "10.5", "0"}, expected: "+Inf"},
		{name: "zero over zero", args: []string{"divide", "0", "0"}, expected: "+Inf"},
		{name: "power", args: []string{"power", "-2", "3"}, expected: "-8"},
		{name: "power invalid domain", args: []string{"power", "-2", "0.5"}, expected: "NaN"},
		{name: "factorial", args: []string{"factorial", "20"}, expected: "2432902008176640000"},
		{name: "factorial negative", args: []string{"factorial", "-5"}, expected: "0"},
		{name: "factorial wraps", args: []string{"factorial", "21"}, expected: "14197454024290336768"},
		{name: "uppercase name", args: []string{"ADD", "1", "2"}, expected: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluate(tt.args)
			if err != nil {
				t.Fatalf("evaluate(%v) error = %v", tt.args, err)
			}
			if got != tt.expected {
				t.Fatalf("evaluate(%v) = %q, want %q", tt.args, got, tt.expected)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no operation", args: nil, want: "missing operation"},
		{name: "unknown operation", args: []string{"modulo", "1", "2"}, want: "unknown operation"},
		{name: "missing operand", args: []string{"add", "1"}, want: "takes 2 operands"},
		{name: "extra operand", args: []string{"add", "1", "2", "3"}, want: "takes 2 operands"},
		{name: "bad float", args: []string{"add", "one", "2"}, want: "invalid operand"},
		{name: "factorial arity", args: []string{"factorial"}, want: "takes 1 operand"},
		{name: "factorial bad int", args: []string{"factorial", "2.5"}, want: "invalid operand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evaluate(tt.args)
			if err == nil {
				t.Fatalf("evaluate(%v): expected error", tt.args)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("evaluate(%v) error = %q, want it to contain %q", tt.args, err.Error(), tt.want)
			}
		})
	}
}

func TestOpNames(t *testing.T) {
	want := []string{"add", "divide", "factorial", "multiply", "power", "subtract"}

	got := opNames()
	if len(got) != len(want) {
		t.Fatalf("opNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("opNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "integer valued", value: 1024, expected: "1024"},
		{name: "fraction", value: 5.25, expected: "5.25"},
		{name: "negative", value: -8.5, expected: "-8.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatFloat(tt.value); got != tt.expected {
				t.Fatalf("formatFloat(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}
