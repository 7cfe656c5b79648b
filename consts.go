package scicalc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// constants are computed to whatever precision the caller asks for. Each
// function must set out to its result at out's precision.
var constants = map[string]func(out *big.Float) *big.Float{
	"pi": bigfloat.Pi,
	"e": func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	},
}

// DefaultDigits is the number of decimal places Constant uses when asked for
// zero or fewer.
const DefaultDigits = 15

// Constant returns the decimal digits of a named constant, "pi" or "e", with
// the given number of places after the point. The text is a number literal
// that Tokenize accepts, so it can be spliced into an expression.
func Constant(name string, digits int) (string, bool) {
	f := constants[name]
	if f == nil {
		return "", false
	}
	if digits <= 0 {
		digits = DefaultDigits
	}
	// Enough bits for the requested places plus guard bits for rounding.
	prec := uint(math.Ceil(float64(digits)*math.Log2(10))) + 32
	x := new(big.Float).SetPrec(prec)
	f(x)
	return x.Text('f', digits), true
}
