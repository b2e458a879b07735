//go:build darwin || freebsd || linux || windows

package main

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// loadMathlib opens the shared library at path and binds the six
// exported symbols. The returned closer releases the library handle.
func loadMathlib(path string) (*mathlib, func() error, error) {
	handle, err := openLibrary(path)
	if err != nil {
		return nil, nil, fmt.Errorf("libcheck: open %s: %w", path, err)
	}

	m := &mathlib{}
	binds := []struct {
		symbol string
		fptr   any
	}{
		{"add_double", &m.add},
		{"sub_double", &m.sub},
		{"mul_double", &m.mul},
		{"div_double", &m.div},
		{"pow_double", &m.pow},
		{"factorial_int", &m.factorial},
	}

	for _, b := range binds {
		addr, err := lookupSymbol(handle, b.symbol)
		if err != nil {
			_ = closeLibrary(handle)
			return nil, nil, fmt.Errorf("libcheck: symbol %s: %w", b.symbol, err)
		}
		purego.RegisterFunc(b.fptr, addr)
	}

	return m, func() error { return closeLibrary(handle) }, nil
}
