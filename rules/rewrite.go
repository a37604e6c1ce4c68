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
	"fmt"

	"github.com/launix-de/symbolic/expr"
)

// Outcome reports what a rewrite step did. Unchanged is not an error:
// the caller still holds the original term.
type Outcome int

const (
	Unchanged Outcome = iota
	Rewritten
	// UnchangedIndeterminate: no rule fired, but at least one guard
	// or blank test stayed unresolved; the caller may prefer to keep
	// the term symbolic instead of assuming all guards were false.
	UnchangedIndeterminate
)

// Rewriter dispatches terms against a shared read-only rule table.
// Multiple rewriters (and goroutines) can borrow the same table as
// long as writers use the table's own Define/Unset/Clear entry points.
type Rewriter struct {
	Table *RuleTable
	Ev    Evaluator
}

func NewRewriter(t *RuleTable) *Rewriter {
	return &Rewriter{t, PredicateEvaluator{}}
}

/*
 Rewrite performs one dispatch step:
  1. atoms and heads without a rule table stay unchanged
  2. rules run in priority order; per rule a fresh bindings map
  3. a present guard is instantiated with the bindings and handed to
     the evaluator; anything but True discards the bindings and moves
     on (this is how piecewise alternatives are encoded)
  4. the first success instantiates the body (single pass, no
     re-rewriting of the result) and wins; later rules never run

 The result of a successful step is NOT rewritten again - fixed-point
 iteration is layered on top (RewriteFully), never inside the step.
*/
func (rw *Rewriter) Rewrite(v expr.Term) (expr.Term, Outcome) {
	e, ok := v.(*expr.Expression)
	if !ok {
		return v, Unchanged
	}
	rules := rw.Table.Lookup(e.Head)
	if rules == nil {
		return v, Unchanged
	}
	return ApplyRuleList(rules, v, rw.Ev)
}

// ApplyRuleList tries an ordered rule list against a term, first match
// wins. This is the dispatch core; Rewrite adds the head lookup on top.
func ApplyRuleList(rules []Rule, v expr.Term, ev Evaluator) (expr.Term, Outcome) {
	indeterminate := false
	for _, rule := range rules {
		b := make(Bindings)
		switch Match(rule.Pattern, v, b, ev) {
		case MatchFailed:
			continue
		case MatchIndeterminate:
			indeterminate = true
			continue
		}
		if rule.Guard != nil {
			verdict := Indeterminate
			if ev != nil {
				verdict = ev.Eval(Substitute(rule.Guard, b))
			}
			if verdict != True {
				if verdict == Indeterminate {
					indeterminate = true
				}
				continue // guard gate closed, bindings discarded
			}
		}
		result := Substitute(rule.Body, b)
		if Settings.Trace {
			fmt.Println("rewrite", expr.String(v), "->", expr.String(result), "via", rule.String())
		}
		return result, Rewritten
	}
	if indeterminate {
		return v, UnchangedIndeterminate
	}
	return v, Unchanged
}

// Substitute instantiates a template: every symbol bound in b is
// replaced by its binding, one single pass, no re-entry into the
// rewriter. A bound head position is only replaced when the binding is
// itself a symbol (an application needs a symbol head).
func Substitute(t expr.Term, b Bindings) expr.Term {
	switch e := t.(type) {
	case expr.Symbol:
		if replacement, ok := b[string(e)]; ok {
			return replacement
		}
		return e
	case *expr.Expression:
		head := e.Head
		if replacement, ok := b[string(e.Head)]; ok {
			if sym, ok := replacement.(expr.Symbol); ok {
				head = sym
			}
		}
		args := make([]expr.Term, len(e.Args))
		for i, arg := range e.Args {
			args[i] = Substitute(arg, b)
		}
		return &expr.Expression{Head: head, Args: args}
	default:
		return t // numbers and nil have no slots
	}
}

/*
 RewriteFully drives the core step to a fixed point: rewrite the root
 until it settles, then the arguments bottom-up, then the root again if
 an argument changed. Every fired rule consumes one step of the budget;
 an exhausted budget panics - pathological rule chains (f[x] -> g[x],
 g[x] -> f[x]) would otherwise never terminate.
*/
func (rw *Rewriter) RewriteFully(v expr.Term) expr.Term {
	steps := Settings.MaxRewriteSteps
	result := rw.rewriteDeep(v, &steps)
	return result
}

func (rw *Rewriter) rewriteDeep(v expr.Term, steps *int) expr.Term {
	for {
		// settle the root first, so no argument work is done on
		// branches a root rule will discard anyway
		for {
			next, outcome := rw.Rewrite(v)
			if outcome != Rewritten {
				break
			}
			v = next
			spendStep(steps, v)
		}
		e, ok := v.(*expr.Expression)
		if !ok {
			return v
		}
		args := make([]expr.Term, len(e.Args))
		argsChanged := false
		for i, arg := range e.Args {
			args[i] = rw.rewriteDeep(arg, steps)
			if !argsChanged && !expr.Equal(args[i], arg) {
				argsChanged = true
			}
		}
		if !argsChanged {
			return v
		}
		v = &expr.Expression{Head: e.Head, Args: args}
		// new argument values may enable a root rule now
		next, outcome := rw.Rewrite(v)
		if outcome != Rewritten {
			return v
		}
		v = next
		spendStep(steps, v)
	}
}

func spendStep(steps *int, at expr.Term) {
	*steps--
	if *steps < 0 {
		panic("rewrite budget exhausted at " + expr.String(at) + " (raise Settings.MaxRewriteSteps or break the rule cycle)")
	}
}
