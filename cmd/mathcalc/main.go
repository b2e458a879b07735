// Command mathcalc evaluates one scalar arithmetic operation from the
// command line.
//
// Usage:
//
//	mathcalc [flags] <operation> <operand> [operand]
//
// Examples:
//
//	mathcalc add 10.5 2
//	mathcalc divide 1 0
//	mathcalc power 2 10
//	mathcalc factorial 20
//	mathcalc -all 10.5 2
//	mathcalc -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-mathlib/scalar"
)

type opEntry struct {
	name  string
	apply func(a, b float64) float64
}

// registry lists the binary floating-point operations. factorial is
// handled separately because it maps int32 to uint64.
var registry = []opEntry{
	{"add", scalar.Add},
	{"subtract", scalar.Subtract},
	{"multiply", scalar.Multiply},
	{"divide", scalar.Divide},
	{"power", scalar.Power},
}

func main() {
	all := flag.Bool("all", false, "apply every binary operation to the two operands")
	list := flag.Bool("list", false, "list available operations")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mathcalc [flags] <operation> <operand> [operand]\n\n")
		fmt.Fprintf(os.Stderr, "Evaluates one scalar arithmetic operation and prints the result.\n")
		fmt.Fprintf(os.Stderr, "Division by zero prints +Inf; factorial of a negative prints 0.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mathcalc add 10.5 2\n")
		fmt.Fprintf(os.Stderr, "  mathcalc factorial 20\n")
		fmt.Fprintf(os.Stderr, "  mathcalc -all 10.5 2\n")
		fmt.Fprintf(os.Stderr, "  mathcalc -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *all {
		if err := printAll(flag.Args()); err != nil {
			fail(err)
		}
		return
	}

	out, err := evaluate(flag.Args())
	if err != nil {
		fail(err)
	}
	fmt.Println(out)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func printList() {
	for _, n := range opNames() {
		fmt.Println(n)
	}
}

// opNames returns every operation name in sorted order, factorial
// included.
func opNames() []string {
	names := make([]string, 0, len(registry)+1)
	for _, e := range registry {
		names = append(names, e.name)
	}
	names = append(names, "factorial")
	sort.Strings(names)

	return names
}

// evaluate applies the named operation to the operand arguments and
// returns the printable result.
func evaluate(args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("missing operation (use -list to see available)")
	}

	name := strings.ToLower(strings.TrimSpace(args[0]))
	operands := args[1:]

	if name == "factorial" {
		if len(operands) != 1 {
			return "", fmt.Errorf("factorial takes 1 operand, got %d", len(operands))
		}
		n, err := strconv.ParseInt(operands[0], 10, 32)
		if err != nil {
			return "", fmt.Errorf("invalid operand %q: %w", operands[0], err)
		}
		return strconv.FormatUint(scalar.Factorial(int32(n)), 10), nil
	}

	for _, e := range registry {
		if e.name != name {
			continue
		}
		if len(operands) != 2 {
			return "", fmt.Errorf("%s takes 2 operands, got %d", name, len(operands))
		}
		a, b, err := parseOperands(operands[0], operands[1])
		if err != nil {
			return "", err
		}
		return formatFloat(e.apply(a, b)), nil
	}

	return "", fmt.Errorf("unknown operation %q (use -list to see available)", name)
}

// printAll applies every binary operation to one operand pair and prints
// a table.
func printAll(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("-all takes 2 operands, got %d", len(args))
	}

	a, b, err := parseOperands(args[0], args[1])
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Operation\tResult\n")
	fmt.Fprintf(tw, "---------\t------\n")
	for _, e := range registry {
		fmt.Fprintf(tw, "%s\t%s\n", e.name, formatFloat(e.apply(a, b)))
	}

	return tw.Flush()
}

func parseOperands(first, second string) (float64, float64, error) {
	a, err := strconv.ParseFloat(first, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid operand %q: %w", first, err)
	}

	b, err := strconv.ParseFloat(second, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid operand %q: %w", second, err)
	}

	return a, b, nil
}

// formatFloat prints shortest round-trip notation; infinities print as
// +Inf/-Inf and invalid domains as NaN.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
