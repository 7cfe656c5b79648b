package scicalc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind is the lexical class of a token.
type Kind int8

const (
	kindNone Kind = iota
	// KindNum is a number literal.
	KindNum
	// KindOp is a binary operator.
	KindOp
	// KindFunc is a unary function, including the factorial sign.
	KindFunc
	// KindOpen is an open parenthesis.
	KindOpen
	// KindClose is a close parenthesis.
	KindClose
	// KindInvalid is any other substring. The tokenizer doesn't reject
	// anything; evaluation reports invalid tokens as syntax errors.
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case kindNone:
		return "None"
	case KindNum:
		return "Num"
	case KindOp:
		return "Op"
	case KindFunc:
		return "Func"
	case KindOpen:
		return "Open"
	case KindClose:
		return "Close"
	case KindInvalid:
		return "Invalid"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is a lexical token. Only the field matching Kind is meaningful, other
// than Text, which always holds the source substring.
type Token struct {
	Kind Kind
	Num  float64
	Op   Operator
	Fn   Function
	Text string
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text
}

// Operators contains the runes which are binary operators.
const Operators = "+-*/^"

// Tokenize splits an expression into tokens in source order. Operators,
// parentheses, and function names are tokens on their own wherever they
// appear; everything else is split on whitespace. A '-' immediately after an
// 'e' or 'E' stays with the preceding text so that "1e-5" is one number.
//
// Tokenize never fails. Substrings that are not numbers, operators,
// parentheses, or function names become KindInvalid tokens.
func Tokenize(src string) []Token {
	var (
		toks []Token
		buf  strings.Builder
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		toks = append(toks, classify(buf.String()))
		buf.Reset()
	}
	for i := 0; i < len(src); {
		r, sz := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			flush()
		case r == '-' && i > 0 && (src[i-1] == 'e' || src[i-1] == 'E'):
			buf.WriteRune(r)
		case strings.ContainsRune(Operators+"()", r):
			flush()
			toks = append(toks, classify(string(r)))
		default:
			if fn, ok := funcAt(src[i:]); ok {
				flush()
				name := fn.String()
				toks = append(toks, Token{Kind: KindFunc, Fn: fn, Text: name})
				i += len(name)
				continue
			}
			buf.WriteRune(r)
		}
		i += sz
	}
	flush()
	return toks
}

// funcAt returns the function whose name is a prefix of s, if any. Names are
// tried in table order.
func funcAt(s string) (Function, bool) {
	for fn := Function(0); fn < fnCount; fn++ {
		if strings.HasPrefix(s, functions[fn].name) {
			return fn, true
		}
	}
	return 0, false
}

// classify creates a token from a single substring.
func classify(text string) Token {
	tok := Token{Kind: KindInvalid, Text: text}
	switch {
	case isNumber(text):
		// Out of range literals parse to ±Inf along with an error, which is
		// what the arithmetic would produce anyway.
		v, _ := strconv.ParseFloat(text, 64)
		tok.Kind = KindNum
		tok.Num = v
	case text == "(":
		tok.Kind = KindOpen
	case text == ")":
		tok.Kind = KindClose
	default:
		if op, ok := opsyms[text]; ok {
			tok.Kind = KindOp
			tok.Op = op
		} else if fn, ok := fnnames[text]; ok {
			tok.Kind = KindFunc
			tok.Fn = fn
		}
	}
	return tok
}

// isNumber reports whether s is a decimal literal: an optional minus sign,
// digits with at most one decimal point, and an optional exponent.
func isNumber(s string) bool {
	var dig, dot, e, le, ed bool
	for i, r := range s {
		switch r {
		case '-':
			switch {
			case i == 0:
			case le:
				le = false
			default:
				return false
			}
		case '+':
			if !le {
				return false
			}
			le = false
		case '.':
			if dot || e {
				return false
			}
			dot = true
		case 'e', 'E':
			if !dig || e {
				return false
			}
			e = true
			le = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return false
		}
	}
	return dig && (!e || ed)
}
