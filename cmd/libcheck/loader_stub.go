//go:build !darwin && !freebsd && !linux && !windows

package main

import "errors"

// loadMathlib is a stub for platforms without a supported dynamic
// loader.
func loadMathlib(string) (*mathlib, func() error, error) {
	return nil, nil, errors.New("libcheck: unsupported OS: no dynamic loader available")
}
