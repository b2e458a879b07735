//go:build js && wasm

package main

import (
	"strconv"
	"syscall/js"

	"github.com/cwbudde/algo-mathlib/scalar"
)

var funcs []js.Func

func main() {
	api := js.Global().Get("Object").New()
	api.Set("add", exportBinary(scalar.Add))
	api.Set("subtract", exportBinary(scalar.Subtract))
	api.Set("multiply", exportBinary(scalar.Multiply))
	api.Set("divide", exportBinary(scalar.Divide))
	api.Set("power", exportBinary(scalar.Power))

	// JS numbers lose integer precision above 2^53 and 20! already
	// exceeds it, so factorial returns its result as a decimal string.
	api.Set("factorial", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		return strconv.FormatUint(scalar.Factorial(int32(args[0].Int())), 10)
	}))

	js.Global().Set("AlgoMathlib", api)
	select {}
}

func exportBinary(op func(a, b float64) float64) js.Func {
	return export(func(args []js.Value) any {
		if len(args) < 2 {
			return js.Null()
		}
		return op(args[0].Float(), args[1].Float())
	})
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
