// Command libcheck loads a built mathlib shared library and verifies
// every exported operation: the arithmetic and factorial symbols against
// the reference implementation in package scalar, pow against the
// standard library contract it delegates to.
//
// Usage:
//
//	libcheck [flags]
//
// Without -lib it looks for the platform library name in the current
// directory: libmathlib.so on Linux, libmathlib.dylib on macOS,
// mathlib.dll on Windows.
//
// Examples:
//
//	go build -buildmode=c-shared -o libmathlib.so ./lib/cshared
//	libcheck
//	libcheck -lib /usr/local/lib/libmathlib.so
//
// Exit status is 0 when every check passes and 1 otherwise, so it can
// gate a packaging step.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"text/tabwriter"
)

func main() {
	libPath := flag.String("lib", "", "path to the shared library (default: ./"+libName()+")")
	quiet := flag.Bool("quiet", false, "print only the summary line")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: libcheck [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Loads a mathlib shared library and verifies it against the Go reference.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  libcheck\n")
		fmt.Fprintf(os.Stderr, "  libcheck -lib build/libmathlib.so\n")
	}
	flag.Parse()

	path := *libPath
	if path == "" {
		path = filepath.Join(".", libName())
	}

	failed, err := run(path, *quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// run loads the library at path, executes the conformance checks, and
// reports them. It returns the number of failed checks.
func run(path string, quiet bool) (int, error) {
	m, closeLib, err := loadMathlib(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := closeLib(); cerr != nil {
			fmt.Fprintf(os.Stderr, "warning: close library: %v\n", cerr)
		}
	}()

	fmt.Printf("checking %s (%s/%s)\n", path, runtime.GOOS, runtime.GOARCH)

	results := runChecks(m)

	failed := 0
	for _, r := range results {
		if !r.ok {
			failed++
		}
	}

	if !quiet {
		if err := printResults(results); err != nil {
			return failed, err
		}
	}

	fmt.Printf("%d checks, %d failed\n", len(results), failed)

	return failed, nil
}

func printResults(results []checkResult) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Check\tGot\tWant\tStatus\n")
	fmt.Fprintf(tw, "-----\t---\t----\t------\n")
	for _, r := range results {
		status := "ok"
		if !r.ok {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.name, r.got, r.want, status)
	}

	return tw.Flush()
}

// libName returns the platform shared-library file name, matching the
// names used by the lib/cshared build instructions.
func libName() string {
	switch runtime.GOOS {
	case "windows":
		return "mathlib.dll"
	case "darwin":
		return "libmathlib.dylib"
	default:
		return "libmathlib.so"
	}
}
