package scicalc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies evaluation failures.
type ErrorKind int8

const (
	// KindNoError is the kind of a nil error or an error not from this
	// package.
	KindNoError ErrorKind = iota
	// KindSyntax is a malformed expression: an empty input, a missing
	// operand, a leftover value, an unknown token, or unbalanced parentheses.
	KindSyntax
	// KindDivisionByZero is a division with a zero divisor.
	KindDivisionByZero
	// KindInvalidArgument is a function operand outside what the function
	// accepts.
	KindInvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case KindNoError:
		return "no error"
	case KindSyntax:
		return "syntax error"
	case KindDivisionByZero:
		return "division by zero"
	case KindInvalidArgument:
		return "invalid argument"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// CalcError is an error with a kind. Every error resulting from evaluating an
// expression implements CalcError.
type CalcError interface {
	error
	Kind() ErrorKind
}

// KindOf returns the kind of the first CalcError in err's chain.
func KindOf(err error) ErrorKind {
	var ce CalcError
	if errors.As(err, &ce) {
		return ce.Kind()
	}
	return KindNoError
}

// SyntaxError indicates a malformed expression.
type SyntaxError struct {
	// Reason describes what is wrong.
	Reason string
	// Token is the text of the offending token, if there is one.
	Token string
}

func (err *SyntaxError) Error() string {
	if err.Token == "" {
		return "syntax error: " + err.Reason
	}
	return "syntax error: " + err.Reason + ": " + strconv.Quote(err.Token)
}

func (err *SyntaxError) Kind() ErrorKind {
	return KindSyntax
}

// DivisionByZeroError indicates a division with a zero divisor.
type DivisionByZeroError struct {
	// Dividend is the left operand of the division.
	Dividend float64
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero: " + strconv.FormatFloat(err.Dividend, 'g', -1, 64) + " / 0"
}

func (err *DivisionByZeroError) Kind() ErrorKind {
	return KindDivisionByZero
}

// ArgumentError indicates a function operand the function does not accept.
type ArgumentError struct {
	// Func is the function name.
	Func string
	// X is the rejected operand.
	X float64
	// Reason describes why X was rejected.
	Reason string
}

func (err *ArgumentError) Error() string {
	return "invalid argument " + strconv.FormatFloat(err.X, 'g', -1, 64) + " to " + err.Func + ": " + err.Reason
}

func (err *ArgumentError) Kind() ErrorKind {
	return KindInvalidArgument
}

var (
	_ CalcError = (*SyntaxError)(nil)
	_ CalcError = (*DivisionByZeroError)(nil)
	_ CalcError = (*ArgumentError)(nil)
)
