package scicalc

import (
	"math"
)

// EvalPostfix evaluates a postfix program on an operand stack. The result is
// a *SyntaxError if an operator or function is missing operands or unknown,
// if any token is invalid, or if the program does not leave exactly one value.
func EvalPostfix(rpn []Token) (float64, error) {
	stack := make([]float64, 0, len(rpn))
	for _, tok := range rpn {
		switch tok.Kind {
		case KindNum:
			stack = append(stack, tok.Num)
		case KindFunc:
			if len(stack) < 1 {
				return 0, &SyntaxError{Reason: "missing operand", Token: tok.Text}
			}
			x := stack[len(stack)-1]
			r, err := tok.Fn.Apply(x)
			if err != nil {
				return 0, err
			}
			stack[len(stack)-1] = r
		case KindOp:
			if len(stack) < 2 {
				return 0, &SyntaxError{Reason: "missing operand", Token: tok.Text}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			r, err := tok.Op.Apply(a, b)
			if err != nil {
				return 0, err
			}
			stack[len(stack)-1] = r
		case KindInvalid:
			return 0, &SyntaxError{Reason: "unknown token", Token: tok.Text}
		default:
			return 0, &SyntaxError{Reason: "unexpected " + tok.Kind.String() + " in postfix", Token: tok.Text}
		}
	}
	switch len(stack) {
	case 0:
		return 0, &SyntaxError{Reason: "no expression"}
	case 1:
		return stack[0], nil
	default:
		return 0, &SyntaxError{Reason: "missing operator"}
	}
}

// Eval evaluates the expression and rounds the result to 12 decimal places.
func (e *Expr) Eval() (float64, error) {
	r, err := EvalPostfix(e.rpn)
	if err != nil {
		return 0, err
	}
	return round(r), nil
}

// Eval parses and evaluates an expression. The result is rounded to 12
// decimal places to hide floating-point noise, so that e.g. sin(180) is 0.
func Eval(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// roundScale is 10^(decimal places kept by round).
const roundScale = 1e12

// round rounds r to 12 decimal places, with halves going toward +Inf. Results
// that round to zero are +0. Magnitudes of 2^53 and up are already integers,
// and scaling them could overflow.
func round(r float64) float64 {
	if math.IsNaN(r) || math.Abs(r) >= 1<<53 {
		return r
	}
	r = math.Floor(r*roundScale+0.5) / roundScale
	if r == 0 {
		r = 0
	}
	return r
}

func add(a, b float64) (float64, error) { return a + b, nil }
func sub(a, b float64) (float64, error) { return a - b, nil }
func mul(a, b float64) (float64, error) { return a * b, nil }

func div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &DivisionByZeroError{Dividend: a}
	}
	return a / b, nil
}

func pow(a, b float64) (float64, error) {
	return math.Pow(a, b), nil
}
