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
	"github.com/launix-de/symbolic/expr"
)

// MatchOutcome is a plain result value; failure to match is a normal
// outcome, never a fault.
type MatchOutcome int

const (
	MatchFailed MatchOutcome = iota
	Matched
	// MatchIndeterminate: a Blank Test could not be resolved to
	// True or False. Treated as failure for dispatch, but callers
	// can tell the cases apart.
	MatchIndeterminate
)

/*
 Match unifies a pattern against a concrete term:
  - Literal matches on structural equality, no bindings
  - Blank binds its name; a rebind only succeeds against a structurally
    equal term (repeated-variable consistency)
  - Compound matches an application with same head and arity, argument
    patterns left to right with short-circuit

 b accumulates across the whole attempt. On any outcome other than
 Matched the caller must throw b away; a failed attempt may have left
 partial bindings behind.
*/
func Match(pattern Pattern, val expr.Term, b Bindings, ev Evaluator) MatchOutcome {
	switch p := pattern.(type) {
	case Literal:
		if expr.Equal(p.Value, val) {
			return Matched
		}
		return MatchFailed
	case Blank:
		if p.Test != nil {
			switch evalTest(p.Test, val, ev) {
			case False:
				return MatchFailed
			case Indeterminate:
				return MatchIndeterminate
			}
		}
		if p.Name == "" {
			return Matched // dontcare
		}
		if prev, ok := b[p.Name]; ok {
			// repeated variable: both occurrences must agree
			if expr.Equal(prev, val) {
				return Matched
			}
			return MatchFailed
		}
		b[p.Name] = val
		return Matched
	case Compound:
		e, ok := val.(*expr.Expression)
		if !ok || e.Head != p.Head || len(e.Args) != len(p.Args) {
			return MatchFailed
		}
		for i, argPattern := range p.Args {
			if outcome := Match(argPattern, e.Args[i], b, ev); outcome != Matched {
				return outcome
			}
		}
		return Matched
	default:
		panic("unknown pattern type - Match")
	}
}

// evalTest applies a Blank's predicate to the candidate term and hands
// the closed call to the guard evaluator. Without an evaluator the test
// cannot be decided.
func evalTest(test expr.Term, val expr.Term, ev Evaluator) Ternary {
	if ev == nil {
		return Indeterminate
	}
	head, ok := test.(expr.Symbol)
	if !ok {
		return Indeterminate // only plain predicate heads are supported as tests
	}
	return ev.Eval(expr.Apply(head, val))
}
