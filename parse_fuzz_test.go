//go:build go1.18
// +build go1.18

package scicalc_test

import (
	"testing"

	"github.com/zephyrtronium/scicalc"
)

func FuzzParse(f *testing.F) {
	f.Add("(1+2)*3")
	f.Add("sin cos(")
	f.Add("1e-5e-5")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := scicalc.Parse(s)
		if err != nil {
			return
		}
		for _, tok := range e.Postfix() {
			if tok.Kind == scicalc.KindOpen || tok.Kind == scicalc.KindClose {
				t.Errorf("%q has parenthesis in postfix %v", s, e)
			}
		}
	})
}
