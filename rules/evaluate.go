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
	"os"
	"path/filepath"
	"strings"

	"github.com/google/btree"
	"github.com/launix-de/symbolic/expr"
	"github.com/shopspring/decimal"
)

// Ternary is the three-valued result of guard evaluation. Only True
// satisfies a guard; Indeterminate means the guard stayed symbolic.
type Ternary int8

const (
	False Ternary = iota
	True
	Indeterminate
)

func (t Ternary) String() string {
	switch t {
	case False:
		return "False"
	case True:
		return "True"
	}
	return "Indeterminate"
}

// Evaluator is the collaborator that resolves guard predicates and
// Blank tests. The rewriting core hands it closed terms (bindings
// already substituted) and consumes only the three-valued verdict.
type Evaluator interface {
	Eval(v expr.Term) Ternary
}

/*
 PredicateEvaluator is the built-in evaluator covering the predicate
 vocabulary guards usually need. It folds numeric subterms bottom-up;
 anything it cannot resolve yields Indeterminate, never an error.
 Transcendental heads (Tanh, ArcTan, ...) stay uninterpreted.
*/
type PredicateEvaluator struct{}

type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int
	Fn           func(a ...expr.Term) expr.Term // nil result = could not resolve
}

var declarations *btree.BTreeG[*Declaration] = btree.NewG[*Declaration](8, func(i, j *Declaration) bool {
	return i.Name < j.Name
})

func Declare(def *Declaration) {
	declarations.ReplaceOrInsert(def)
}

func lookupDeclaration(name string) *Declaration {
	d, _ := declarations.Get(&Declaration{Name: name})
	return d
}

// WriteDocumentation generates a Markdown reference of all declared
// predicates in name order.
func WriteDocumentation(folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", folder, err)
	}
	var b strings.Builder
	b.WriteString("# Guard predicates\n\n")
	declarations.Ascend(func(d *Declaration) bool {
		b.WriteString("## " + d.Name + "\n\n")
		b.WriteString(d.Desc + "\n\n")
		if d.MinParameter == d.MaxParameter {
			fmt.Fprintf(&b, "Parameters: %d\n\n", d.MinParameter)
		} else {
			fmt.Fprintf(&b, "Parameters: %d-%d\n\n", d.MinParameter, d.MaxParameter)
		}
		return true
	})
	return os.WriteFile(filepath.Join(folder, "predicates.md"), []byte(b.String()), 0o644)
}

func (PredicateEvaluator) Eval(v expr.Term) Ternary {
	return toTernary(fold(v))
}

func toTernary(v expr.Term) Ternary {
	switch v {
	case expr.SymbolTrue:
		return True
	case expr.SymbolFalse:
		return False
	}
	return Indeterminate
}

func ternaryTerm(t Ternary) expr.Term {
	switch t {
	case True:
		return expr.SymbolTrue
	case False:
		return expr.SymbolFalse
	}
	return expr.SymbolIndeterminate
}

// fold evaluates a term bottom-up as far as the declared predicate and
// arithmetic vocabulary reaches; unresolved parts are returned as-is.
func fold(v expr.Term) expr.Term {
	e, ok := v.(*expr.Expression)
	if !ok {
		return v
	}
	args := make([]expr.Term, len(e.Args))
	for i, a := range e.Args {
		args[i] = fold(a)
	}
	d := lookupDeclaration(string(e.Head))
	if d == nil || d.Fn == nil {
		return &expr.Expression{Head: e.Head, Args: args}
	}
	if len(args) < d.MinParameter || len(args) > d.MaxParameter {
		return &expr.Expression{Head: e.Head, Args: args}
	}
	if r := d.Fn(args...); r != nil {
		return r
	}
	return &expr.Expression{Head: e.Head, Args: args}
}

func asNumber(v expr.Term) (decimal.Decimal, bool) {
	d, ok := v.(decimal.Decimal)
	return d, ok
}

// numericQ lifts a number-only predicate into a Q function (Q functions
// answer False on non-numbers, mathematica-style)
func numericQ(f func(d decimal.Decimal) bool) func(a ...expr.Term) expr.Term {
	return func(a ...expr.Term) expr.Term {
		d, ok := asNumber(a[0])
		if !ok {
			return expr.SymbolFalse
		}
		return ternaryTerm(ternaryBool(f(d)))
	}
}

// numericSign lifts a sign predicate that stays symbolic on non-numbers
func numericSign(f func(d decimal.Decimal) bool) func(a ...expr.Term) expr.Term {
	return func(a ...expr.Term) expr.Term {
		d, ok := asNumber(a[0])
		if !ok {
			return nil // leave unevaluated -> Indeterminate
		}
		return ternaryTerm(ternaryBool(f(d)))
	}
}

// numericCompare lifts a two-number comparison; symbolic operands stay
// unresolved
func numericCompare(f func(cmp int) bool) func(a ...expr.Term) expr.Term {
	return func(a ...expr.Term) expr.Term {
		x, ok1 := asNumber(a[0])
		y, ok2 := asNumber(a[1])
		if !ok1 || !ok2 {
			return nil
		}
		return ternaryTerm(ternaryBool(f(x.Cmp(y))))
	}
}

func ternaryBool(b bool) Ternary {
	if b {
		return True
	}
	return False
}

func init() {
	Declare(&Declaration{
		"NumberQ", "answers True if the argument is a numeric literal",
		1, 1,
		func(a ...expr.Term) expr.Term {
			_, ok := asNumber(a[0])
			return ternaryTerm(ternaryBool(ok))
		},
	})
	Declare(&Declaration{
		"IntegerQ", "answers True if the argument is an integer literal",
		1, 1,
		numericQ(func(d decimal.Decimal) bool { return d.IsInteger() }),
	})
	Declare(&Declaration{
		"EvenQ", "answers True if the argument is an even integer",
		1, 1,
		numericQ(func(d decimal.Decimal) bool {
			return d.IsInteger() && d.Mod(decimal.NewFromInt(2)).IsZero()
		}),
	})
	Declare(&Declaration{
		"OddQ", "answers True if the argument is an odd integer",
		1, 1,
		numericQ(func(d decimal.Decimal) bool {
			return d.IsInteger() && !d.Mod(decimal.NewFromInt(2)).IsZero()
		}),
	})
	Declare(&Declaration{
		"Positive", "sign test; stays Indeterminate on symbolic arguments",
		1, 1,
		numericSign(func(d decimal.Decimal) bool { return d.Sign() > 0 }),
	})
	Declare(&Declaration{
		"Negative", "sign test; stays Indeterminate on symbolic arguments",
		1, 1,
		numericSign(func(d decimal.Decimal) bool { return d.Sign() < 0 }),
	})
	Declare(&Declaration{
		"NonNegative", "sign test; stays Indeterminate on symbolic arguments",
		1, 1,
		numericSign(func(d decimal.Decimal) bool { return d.Sign() >= 0 }),
	})
	Declare(&Declaration{
		"Greater", "numeric comparison a > b",
		2, 2,
		numericCompare(func(cmp int) bool { return cmp > 0 }),
	})
	Declare(&Declaration{
		"GreaterEqual", "numeric comparison a >= b",
		2, 2,
		numericCompare(func(cmp int) bool { return cmp >= 0 }),
	})
	Declare(&Declaration{
		"Less", "numeric comparison a < b",
		2, 2,
		numericCompare(func(cmp int) bool { return cmp < 0 }),
	})
	Declare(&Declaration{
		"LessEqual", "numeric comparison a <= b",
		2, 2,
		numericCompare(func(cmp int) bool { return cmp <= 0 }),
	})
	Declare(&Declaration{
		"Equal", "structural equality test; equal terms answer True even when symbolic, unequal symbolic terms stay Indeterminate",
		2, 2,
		func(a ...expr.Term) expr.Term {
			if expr.Equal(a[0], a[1]) {
				return expr.SymbolTrue
			}
			_, ok1 := asNumber(a[0])
			_, ok2 := asNumber(a[1])
			if ok1 && ok2 {
				return expr.SymbolFalse
			}
			return nil
		},
	})
	Declare(&Declaration{
		"Unequal", "negated Equal with the same symbolic behaviour",
		2, 2,
		func(a ...expr.Term) expr.Term {
			if expr.Equal(a[0], a[1]) {
				return expr.SymbolFalse
			}
			_, ok1 := asNumber(a[0])
			_, ok2 := asNumber(a[1])
			if ok1 && ok2 {
				return expr.SymbolTrue
			}
			return nil
		},
	})
	Declare(&Declaration{
		"Not", "three-valued negation",
		1, 1,
		func(a ...expr.Term) expr.Term {
			switch toTernary(a[0]) {
			case True:
				return expr.SymbolFalse
			case False:
				return expr.SymbolTrue
			}
			return nil
		},
	})
	Declare(&Declaration{
		"And", "three-valued conjunction (Kleene): False dominates, Indeterminate propagates",
		1, 1000,
		func(a ...expr.Term) expr.Term {
			result := True
			for _, v := range a {
				switch toTernary(v) {
				case False:
					return expr.SymbolFalse
				case Indeterminate:
					result = Indeterminate
				}
			}
			if result == True {
				return expr.SymbolTrue
			}
			return nil
		},
	})
	Declare(&Declaration{
		"Or", "three-valued disjunction (Kleene): True dominates, Indeterminate propagates",
		1, 1000,
		func(a ...expr.Term) expr.Term {
			result := False
			for _, v := range a {
				switch toTernary(v) {
				case True:
					return expr.SymbolTrue
				case Indeterminate:
					result = Indeterminate
				}
			}
			if result == False {
				return expr.SymbolFalse
			}
			return nil
		},
	})
	Declare(&Declaration{
		"Re", "real part; the identity on real numeric literals, symbolic otherwise",
		1, 1,
		func(a ...expr.Term) expr.Term {
			if d, ok := asNumber(a[0]); ok {
				return d
			}
			return nil
		},
	})
}
