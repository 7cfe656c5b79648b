package scicalc_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	. "gopkg.in/check.v1"

	"github.com/zephyrtronium/scicalc"
)

func Test(t *testing.T) { TestingT(t) }

type SessionSuite struct {
	s *scicalc.Session
}

var _ = Suite(&SessionSuite{})

func (s *SessionSuite) SetUpTest(c *C) {
	s.s = scicalc.NewSession()
}

func (s *SessionSuite) TestInitialState(c *C) {
	c.Check(s.s.Expression(), Equals, "")
	c.Check(s.s.Display(), Equals, "0")
	c.Check(s.s.History(), Equals, "")
	c.Check(s.s.Memory(), Equals, 0.0)
	c.Check(s.s.Err(), IsNil)
}

func (s *SessionSuite) TestEquals(c *C) {
	s.s.Input("2+3")
	c.Check(s.s.Display(), Equals, "2+3")
	r, err := s.s.Equals()
	c.Assert(err, IsNil)
	c.Check(r, Equals, 5.0)
	c.Check(s.s.Expression(), Equals, "5")
	c.Check(s.s.History(), Equals, "2+3 =")

	// The result is the start of the next expression.
	s.s.Input("*4")
	r, err = s.s.Equals()
	c.Assert(err, IsNil)
	c.Check(r, Equals, 20.0)
	c.Check(s.s.History(), Equals, "5*4 =")
}

func (s *SessionSuite) TestEqualsEmpty(c *C) {
	r, err := s.s.Equals()
	c.Check(err, IsNil)
	c.Check(r, Equals, 0.0)
	c.Check(s.s.Display(), Equals, "0")
	c.Check(s.s.History(), Equals, "")
}

func (s *SessionSuite) TestErrorState(c *C) {
	s.s.Input("10/0")
	_, err := s.s.Equals()
	c.Assert(err, NotNil)
	c.Check(err, ErrorMatches, `evaluating "10/0": division by zero.*`)
	c.Check(scicalc.KindOf(err), Equals, scicalc.KindDivisionByZero)
	_, ok := errors.Cause(err).(*scicalc.DivisionByZeroError)
	c.Check(ok, Equals, true)
	c.Check(s.s.Display(), Equals, "Error")
	c.Check(s.s.History(), Equals, "")
	c.Check(s.s.Err(), Equals, err)

	// Equals again keeps the error.
	r, err := s.s.Equals()
	c.Check(err, IsNil)
	c.Check(r, Equals, 0.0)
	c.Check(s.s.Display(), Equals, "Error")

	// The next key starts over.
	s.s.Input("7")
	c.Check(s.s.Err(), IsNil)
	c.Check(s.s.Expression(), Equals, "7")
}

func (s *SessionSuite) TestErrorKinds(c *C) {
	cases := []struct {
		expr string
		kind scicalc.ErrorKind
	}{
		{"2+", scicalc.KindSyntax},
		{"(1", scicalc.KindSyntax},
		{"1/0", scicalc.KindDivisionByZero},
		{"(0-1)!", scicalc.KindInvalidArgument},
	}
	for _, t := range cases {
		s.s.ClearAll()
		s.s.Input(t.expr)
		_, err := s.s.Equals()
		c.Check(scicalc.KindOf(err), Equals, t.kind, Commentf("%q: %v", t.expr, err))
		c.Check(s.s.Display(), Equals, "Error")
	}
}

func (s *SessionSuite) TestClearAll(c *C) {
	s.s.Input("1+1")
	s.s.Equals()
	s.s.MemoryAdd()
	s.s.ClearAll()
	c.Check(s.s.Expression(), Equals, "")
	c.Check(s.s.History(), Equals, "")
	c.Check(s.s.Memory(), Equals, 2.0)

	s.s.Input("1/0")
	s.s.Equals()
	s.s.ClearAll()
	c.Check(s.s.Err(), IsNil)
	c.Check(s.s.Display(), Equals, "0")
}

func (s *SessionSuite) TestBackspace(c *C) {
	s.s.Input("123")
	s.s.Backspace()
	c.Check(s.s.Expression(), Equals, "12")
	s.s.Backspace()
	s.s.Backspace()
	c.Check(s.s.Expression(), Equals, "")
	s.s.Backspace()
	c.Check(s.s.Expression(), Equals, "")
}

func (s *SessionSuite) TestBackspaceRune(c *C) {
	s.s.Input("2π")
	s.s.Backspace()
	c.Check(s.s.Expression(), Equals, "2")
}

func (s *SessionSuite) TestNegativeZero(c *C) {
	s.s.Input("tan(180)")
	r, err := s.s.Equals()
	c.Assert(err, IsNil)
	c.Check(math.Signbit(r), Equals, false)
	c.Check(s.s.Expression(), Equals, "0")
	s.s.Input("+1")
	r, err = s.s.Equals()
	c.Assert(err, IsNil)
	c.Check(r, Equals, 1.0)

	ss := scicalc.NewSession(scicalc.WithMemory(math.Copysign(0, -1)))
	ss.MemoryRecall()
	c.Check(ss.Expression(), Equals, "0")
}

func (s *SessionSuite) TestToggleSign(c *C) {
	s.s.Input("5")
	s.s.ToggleSign()
	c.Check(s.s.Expression(), Equals, "-5")
	s.s.ToggleSign()
	c.Check(s.s.Expression(), Equals, "5")
}

func (s *SessionSuite) TestConstants(c *C) {
	c.Assert(s.s.Constant("pi"), IsNil)
	c.Check(s.s.Expression(), Equals, "3.141592653589793")
	s.s.ClearAll()
	c.Assert(s.s.Constant("e"), IsNil)
	c.Check(s.s.Expression(), Equals, "2.718281828459045")

	s.s.ClearAll()
	s.s.Input("2*")
	c.Assert(s.s.Constant("pi"), IsNil)
	r, err := s.s.Equals()
	c.Assert(err, IsNil)
	c.Check(r, Equals, 6.28318530718)

	c.Check(s.s.Constant("tau"), ErrorMatches, `unknown constant "tau"`)
}

func (s *SessionSuite) TestConstantDigits(c *C) {
	ss := scicalc.NewSession(scicalc.WithDigits(5))
	c.Assert(ss.Constant("pi"), IsNil)
	c.Check(ss.Expression(), Equals, "3.14159")
	ss.ClearAll()
	c.Assert(ss.Constant("e"), IsNil)
	c.Check(ss.Expression(), Equals, "2.71828")
}

func (s *SessionSuite) TestMemory(c *C) {
	c.Assert(s.s.MemoryAdd(), IsNil)
	c.Check(s.s.Memory(), Equals, 0.0)
	c.Check(s.s.History(), Equals, "Memory: 0")

	s.s.Input("2+3")
	c.Assert(s.s.MemoryAdd(), IsNil)
	c.Check(s.s.Memory(), Equals, 5.0)
	c.Check(s.s.Expression(), Equals, "2+3")
	c.Check(s.s.History(), Equals, "Memory: 5")
	c.Assert(s.s.MemoryAdd(), IsNil)
	c.Check(s.s.Memory(), Equals, 10.0)

	s.s.ClearAll()
	s.s.MemoryRecall()
	c.Check(s.s.Expression(), Equals, "10")
	s.s.Input("*2")
	r, err := s.s.Equals()
	c.Assert(err, IsNil)
	c.Check(r, Equals, 20.0)

	s.s.MemoryClear()
	c.Check(s.s.Memory(), Equals, 0.0)
	c.Check(s.s.History(), Equals, "Memory: 0")
}

func (s *SessionSuite) TestMemoryAddError(c *C) {
	s.s.Input("4")
	c.Assert(s.s.MemoryAdd(), IsNil)
	s.s.ClearAll()
	s.s.Input("1/0")
	err := s.s.MemoryAdd()
	c.Assert(err, NotNil)
	c.Check(err, ErrorMatches, `adding "1/0" to memory: .*`)
	c.Check(s.s.Display(), Equals, "Error")
	c.Check(s.s.Memory(), Equals, 4.0)
}

func (s *SessionSuite) TestMemoryRecallFormat(c *C) {
	cases := []struct {
		mem  float64
		text string
	}{
		{2.5, "2.5"},
		{-4, "-4"},
		{1e21, "1000000000000000000000"},
		{1e-7, "0.0000001"},
	}
	for _, t := range cases {
		ss := scicalc.NewSession(scicalc.WithMemory(t.mem))
		ss.MemoryRecall()
		c.Check(ss.Expression(), Equals, t.text)
	}
	// Large values splice as digits that evaluate back to the same value.
	ss := scicalc.NewSession(scicalc.WithMemory(1e21))
	ss.MemoryRecall()
	r, err := ss.Equals()
	c.Assert(err, IsNil)
	c.Check(r, Equals, 1e21)
}

func (s *SessionSuite) TestLogger(c *C) {
	var buf bytes.Buffer
	ss := scicalc.NewSession(scicalc.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	ss.Input("1+1")
	_, err := ss.Equals()
	c.Assert(err, IsNil)
	c.Check(buf.String(), Matches, `(?s).*"expr":"1\+1".*"message":"evaluated".*`)

	buf.Reset()
	ss.Input("/0")
	ss.Equals()
	c.Check(buf.String(), Matches, `(?s).*"kind":"division by zero".*`)
}
