package scicalc

import (
	"math"
	"strconv"
)

// Function is a unary function. The factorial sign counts as a function.
type Function int8

const (
	FnSin Function = iota
	FnCos
	FnTan
	FnLog
	FnLn
	FnSqrt
	FnFact

	fnCount
)

type fninfo struct {
	name  string
	apply func(x float64) (float64, error)
}

// functions is in the order the tokenizer tries names.
var functions = [fnCount]fninfo{
	FnSin:  {"sin", monadic(func(x float64) float64 { return math.Sin(radians(x)) })},
	FnCos:  {"cos", monadic(func(x float64) float64 { return math.Cos(radians(x)) })},
	FnTan:  {"tan", monadic(func(x float64) float64 { return math.Tan(radians(x)) })},
	FnLog:  {"log", monadic(math.Log10)},
	FnLn:   {"ln", monadic(math.Log)},
	FnSqrt: {"sqrt", monadic(math.Sqrt)},
	FnFact: {"!", factorial},
}

var fnnames = func() map[string]Function {
	m := make(map[string]Function, fnCount)
	for fn, info := range functions {
		m[info.name] = Function(fn)
	}
	return m
}()

func (fn Function) valid() bool {
	return fn >= 0 && fn < fnCount
}

func (fn Function) String() string {
	if !fn.valid() {
		return "Function(" + strconv.Itoa(int(fn)) + ")"
	}
	return functions[fn].name
}

// Apply evaluates the function at x. Applying an unknown function is a
// *SyntaxError.
func (fn Function) Apply(x float64) (float64, error) {
	if !fn.valid() {
		return 0, &SyntaxError{Reason: "unknown function", Token: fn.String()}
	}
	return functions[fn].apply(x)
}

// monadic wraps a function that cannot fail. Domain errors in the math
// package produce NaN rather than an error.
func monadic(f func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// maxFactorial is the largest n for which n! is finite as a float64.
const maxFactorial = 170

// factorial computes x! for non-negative integers x.
func factorial(x float64) (float64, error) {
	switch {
	case x < 0:
		return 0, &ArgumentError{Func: "!", X: x, Reason: "negative operand"}
	case x != math.Trunc(x):
		// Includes NaN.
		return 0, &ArgumentError{Func: "!", X: x, Reason: "non-integer operand"}
	case x > maxFactorial:
		return math.Inf(1), nil
	case x == 0, x == 1:
		return 1, nil
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
	}
	return r, nil
}
