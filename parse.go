package scicalc

import (
	"strconv"
	"strings"
)

// Operator is a binary operator.
type Operator int8

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpPow

	opCount
)

type opinfo struct {
	sym string
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// apply computes a op b.
	apply func(a, b float64) (float64, error)
}

var operators = [opCount]opinfo{
	OpAdd: {"+", 1, false, add},
	OpSub: {"-", 1, false, sub},
	OpMul: {"*", 2, false, mul},
	OpDiv: {"/", 2, false, div},
	OpPow: {"^", 3, true, pow},
}

// opsyms maps operator symbols to operators. Only the tokenizer uses it.
var opsyms = func() map[string]Operator {
	m := make(map[string]Operator, opCount)
	for op, info := range operators {
		m[info.sym] = Operator(op)
	}
	return m
}()

func (op Operator) valid() bool {
	return op >= 0 && op < opCount
}

func (op Operator) String() string {
	if !op.valid() {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return operators[op].sym
}

// Prec returns the precedence of the operator. Higher is more binding. Unknown
// operators have precedence 0.
func (op Operator) Prec() int {
	if !op.valid() {
		return 0
	}
	return int(operators[op].prec)
}

// RightAssoc returns whether the operator groups right to left.
func (op Operator) RightAssoc() bool {
	return op.valid() && operators[op].right
}

// Apply computes a op b. Applying an unknown operator is a *SyntaxError.
func (op Operator) Apply(a, b float64) (float64, error) {
	if !op.valid() {
		return 0, &SyntaxError{Reason: "unknown operator", Token: op.String()}
	}
	return operators[op].apply(a, b)
}

// ToPostfix reorders tokens in infix order into postfix order using the
// shunting-yard algorithm. The result contains no parentheses.
//
// A function is applied to the parenthesized group that directly follows it,
// so sqrt(x) becomes x sqrt. Operators never pop functions from the stack, so
// a function without parentheses, like 5!, applies to everything up to the
// end of the enclosing group.
//
// The result is an error for unbalanced parentheses and for tokens that
// Tokenize never produces. Other malformed input, such as a missing operand,
// is left for evaluation to report.
func ToPostfix(toks []Token) ([]Token, error) {
	out := make([]Token, 0, len(toks))
	var stack []Token
	for _, tok := range toks {
		switch tok.Kind {
		case KindNum, KindInvalid:
			out = append(out, tok)
		case KindFunc:
			if !tok.Fn.valid() {
				return nil, &SyntaxError{Reason: "unknown function", Token: tok.Text}
			}
			stack = append(stack, tok)
		case KindOpen:
			stack = append(stack, tok)
		case KindOp:
			if !tok.Op.valid() {
				return nil, &SyntaxError{Reason: "unknown operator", Token: tok.Text}
			}
			p := operators[tok.Op]
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != KindOp {
					break
				}
				q := operators[top.Op]
				if q.prec < p.prec || q.prec == p.prec && p.right {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case KindClose:
			for len(stack) > 0 && stack[len(stack)-1].Kind != KindOpen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &SyntaxError{Reason: "close parenthesis with no open parenthesis", Token: tok.Text}
			}
			stack = stack[:len(stack)-1]
			if len(stack) > 0 && stack[len(stack)-1].Kind == KindFunc {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		default:
			return nil, &SyntaxError{Reason: "unexpected " + tok.Kind.String() + " token", Token: tok.Text}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Kind == KindOpen {
			return nil, &SyntaxError{Reason: "open parenthesis with no close parenthesis", Token: top.Text}
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}
	return out, nil
}

// Expr is a parsed expression, held as a postfix program.
type Expr struct {
	rpn []Token
}

// Parse tokenizes an expression and converts it to postfix form.
func Parse(src string) (*Expr, error) {
	rpn, err := ToPostfix(Tokenize(src))
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn}, nil
}

// Postfix returns a copy of the postfix program.
func (e *Expr) Postfix() []Token {
	return append(([]Token)(nil), e.rpn...)
}

// String formats the postfix program with tokens separated by spaces.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}
