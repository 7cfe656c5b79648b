package scicalc

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Session is the state of one calculator: the expression being keyed in, the
// history line shown above it, and the memory register. The expression is
// only evaluated on Equals and MemoryAdd; evaluation itself keeps no state.
//
// After a failed evaluation, the session is in an error state. The next key
// other than ClearAll starts a new expression. A Session is not safe to use
// concurrently.
type Session struct {
	expr    string
	history string
	memory  float64
	err     error
	digits  int
	log     zerolog.Logger
}

// SessionOption is an option used when creating a session.
type SessionOption interface {
	sessionOption(*Session)
}

type (
	memopt    float64
	digitsopt int
	logopt    struct{ l zerolog.Logger }
)

func (o memopt) sessionOption(s *Session)    { s.memory = float64(o) }
func (o digitsopt) sessionOption(s *Session) { s.digits = int(o) }
func (o logopt) sessionOption(s *Session)    { s.log = o.l }

// WithMemory sets the initial value of the memory register.
func WithMemory(v float64) SessionOption {
	return memopt(v)
}

// WithDigits sets the number of decimal places spliced into the expression
// for constants. The default is DefaultDigits.
func WithDigits(n int) SessionOption {
	return digitsopt(n)
}

// WithLogger sets a logger for debug events. By default, sessions don't log.
func WithLogger(l zerolog.Logger) SessionOption {
	return logopt{l}
}

// NewSession creates a session with an empty expression and memory 0, unless
// options say otherwise.
func NewSession(opts ...SessionOption) *Session {
	s := Session{digits: DefaultDigits, log: zerolog.Nop()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.sessionOption(&s)
	}
	return &s
}

// Expression returns the current expression text.
func (s *Session) Expression() string {
	return s.expr
}

// Display returns the text for the main display: the expression, "0" when it
// is empty, or "Error" in the error state.
func (s *Session) Display() string {
	switch {
	case s.err != nil:
		return "Error"
	case s.expr == "":
		return "0"
	default:
		return s.expr
	}
}

// History returns the line shown above the display, either the last evaluated
// expression followed by " =" or the memory register after a memory action.
func (s *Session) History() string {
	return s.history
}

// Memory returns the value of the memory register.
func (s *Session) Memory() float64 {
	return s.memory
}

// Err returns the error that put the session in the error state, or nil.
func (s *Session) Err() error {
	return s.err
}

// resume leaves the error state, if the session is in it.
func (s *Session) resume() {
	if s.err == nil {
		return
	}
	s.err = nil
	s.expr = ""
}

// fail enters the error state.
func (s *Session) fail(err error) error {
	s.err = err
	s.expr = ""
	s.history = ""
	s.log.Debug().Err(err).Str("kind", KindOf(err).String()).Msg("evaluation failed")
	return err
}

// Input appends keys to the expression.
func (s *Session) Input(keys string) {
	s.resume()
	s.expr += keys
}

// Constant appends the digits of a named constant, "pi" or "e".
func (s *Session) Constant(name string) error {
	s.resume()
	c, ok := Constant(name, s.digits)
	if !ok {
		return errors.Errorf("unknown constant %q", name)
	}
	s.expr += c
	return nil
}

// Equals evaluates the expression and returns the result. On success, the
// result replaces the expression and the history shows what was evaluated. An
// empty expression does nothing and returns 0, as does Equals in the error
// state.
func (s *Session) Equals() (float64, error) {
	if s.err != nil || s.expr == "" {
		return 0, nil
	}
	expr := s.expr
	r, err := Eval(expr)
	if err != nil {
		return 0, s.fail(errors.Wrapf(err, "evaluating %q", expr))
	}
	s.log.Debug().Str("expr", expr).Float64("result", r).Msg("evaluated")
	s.history = expr + " ="
	s.expr = formatNum(r)
	return r, nil
}

// ClearAll clears the expression, the history, and the error state. Memory is
// kept.
func (s *Session) ClearAll() {
	s.expr = ""
	s.history = ""
	s.err = nil
}

// Backspace removes the last character of the expression.
func (s *Session) Backspace() {
	s.resume()
	_, sz := utf8.DecodeLastRuneInString(s.expr)
	s.expr = s.expr[:len(s.expr)-sz]
}

// ToggleSign adds or removes a leading minus sign on the whole expression.
func (s *Session) ToggleSign() {
	s.resume()
	if strings.HasPrefix(s.expr, "-") {
		s.expr = s.expr[1:]
		return
	}
	s.expr = "-" + s.expr
}

// MemoryAdd evaluates the expression, or 0 if it is empty, and adds the
// result to the memory register. The expression is left as it is.
func (s *Session) MemoryAdd() error {
	s.resume()
	expr := s.expr
	if expr == "" {
		expr = "0"
	}
	r, err := Eval(expr)
	if err != nil {
		return s.fail(errors.Wrapf(err, "adding %q to memory", expr))
	}
	s.memory += r
	s.log.Debug().Float64("memory", s.memory).Msg("memory add")
	s.history = "Memory: " + formatNum(s.memory)
	return nil
}

// MemoryRecall appends the memory register to the expression as digits.
func (s *Session) MemoryRecall() {
	s.resume()
	s.expr += formatNum(s.memory)
}

// MemoryClear sets the memory register to 0.
func (s *Session) MemoryClear() {
	s.resume()
	s.memory = 0
	s.log.Debug().Msg("memory clear")
	s.history = "Memory: 0"
}

// formatNum formats a number as a literal without an exponent, so that the
// text tokenizes back to the same value. Negative zero formats as "0".
func formatNum(x float64) string {
	if x == 0 {
		x = 0
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
