/*
Copyright (C) 2026  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package rules

import (
	"strings"

	"github.com/launix-de/symbolic/expr"
)

/*
 pattern model

 a Pattern is one of:
  - Literal  -> matches only a structurally equal term
  - Blank    -> wildcard slot, binds the matched term to a name
  - Compound -> matches Head[args...] with same head and arity

 Patterns never change after construction; the matcher walks them
 read-only and keeps all state in the Bindings map of one attempt.
*/

type Pattern interface{}

type Literal struct {
	Value expr.Term
}

// Blank is a wildcard slot (the z_ notation). An empty Name matches
// without binding (dontcare). Test, if set, names a unary predicate
// that the guard evaluator must resolve to True for the candidate,
// e.g. Blank{"n", expr.Symbol("IntegerQ")} for n_?IntegerQ.
type Blank struct {
	Name string
	Test expr.Term
}

type Compound struct {
	Head expr.Symbol
	Args []Pattern
}

// Bindings maps wildcard names to the subterms they matched. Built
// incrementally during one match attempt, discarded on failure.
type Bindings map[string]expr.Term

// P builds a Compound over mixed members: Pattern members are taken
// as-is, everything else is wrapped into a Literal.
func P(head expr.Symbol, members ...interface{}) Compound {
	args := make([]Pattern, len(members))
	for i, m := range members {
		switch p := m.(type) {
		case Literal, Blank, Compound:
			args[i] = p
		default:
			args[i] = Literal{p}
		}
	}
	return Compound{head, args}
}

// names collects every non-empty wildcard name a pattern binds.
func names(p Pattern, out map[string]bool) {
	switch p_ := p.(type) {
	case Literal:
		// nothing
	case Blank:
		if p_.Name != "" {
			out[p_.Name] = true
		}
	case Compound:
		for _, arg := range p_.Args {
			names(arg, out)
		}
	default:
		panic("unknown pattern type - names")
	}
}

// patternEqual compares two patterns structurally (used by UnsetPattern)
func patternEqual(a, b Pattern) bool {
	switch a_ := a.(type) {
	case Literal:
		b_, ok := b.(Literal)
		return ok && expr.Equal(a_.Value, b_.Value)
	case Blank:
		b_, ok := b.(Blank)
		if !ok || a_.Name != b_.Name {
			return false
		}
		if a_.Test == nil || b_.Test == nil {
			return a_.Test == nil && b_.Test == nil
		}
		return expr.Equal(a_.Test, b_.Test)
	case Compound:
		b_, ok := b.(Compound)
		if !ok || a_.Head != b_.Head || len(a_.Args) != len(b_.Args) {
			return false
		}
		for i, arg := range a_.Args {
			if !patternEqual(arg, b_.Args[i]) {
				return false
			}
		}
		return true
	default:
		panic("unknown pattern type - patternEqual")
	}
}

// PatternString renders a pattern in the underscore notation for traces
// and error messages: G[0], G[z_], G[n_?IntegerQ].
func PatternString(p Pattern) string {
	var b strings.Builder
	writePattern(&b, p)
	return b.String()
}

func writePattern(b *strings.Builder, p Pattern) {
	switch p_ := p.(type) {
	case Literal:
		b.WriteString(expr.String(p_.Value))
	case Blank:
		b.WriteString(p_.Name)
		b.WriteByte('_')
		if p_.Test != nil {
			b.WriteByte('?')
			b.WriteString(expr.String(p_.Test))
		}
	case Compound:
		b.WriteString(string(p_.Head))
		b.WriteByte('[')
		for i, arg := range p_.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writePattern(b, arg)
		}
		b.WriteByte(']')
	default:
		panic("unknown pattern type - PatternString")
	}
}

func patternSize(p Pattern) uint {
	switch p_ := p.(type) {
	case Literal:
		return expr.ComputeSize(p_.Value)
	case Blank:
		sz := uint(32) + align8(uint(len(p_.Name)))
		if p_.Test != nil {
			sz += expr.ComputeSize(p_.Test)
		}
		return sz
	case Compound:
		sz := uint(32) + align8(uint(len(p_.Head)))
		for _, arg := range p_.Args {
			sz += patternSize(arg)
		}
		return sz
	default:
		return 0
	}
}

func align8(n uint) uint {
	if r := n & 7; r != 0 {
		return n + (8 - r)
	}
	return n
}
