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
package expr

import (
	"github.com/shopspring/decimal"
)

/*
 value model of the symbolic kernel

 a Term is one of:
  - decimal.Decimal -> exact numeric literal
  - Symbol          -> named atom
  - *Expression     -> head applied to an ordered argument list

 Terms are never mutated after construction. Argument slices are copied
 on the way in so callers cannot alias into a tree.
*/

type Term interface{}

type Symbol string // symbols are represented by strings

// Expression is an application node: Head[Args...].
// The head is always a symbol; nested heads like f[x][y] stay out of
// scope of this kernel (the evaluator collaborators never produce them).
type Expression struct {
	Head Symbol
	Args []Term
}

// Int builds an exact integer literal.
func Int(i int64) Term {
	return decimal.NewFromInt(i)
}

// Float builds a numeric literal from a float; the decimal conversion
// keeps the shortest representation that round-trips.
func Float(f float64) Term {
	return decimal.NewFromFloat(f)
}

// Num wraps an exact decimal as a Term.
func Num(d decimal.Decimal) Term {
	return d
}

func Sym(name string) Symbol {
	return Symbol(name)
}

// Apply builds Head[args...]; the argument list is copied.
func Apply(head Symbol, args ...Term) *Expression {
	cp := make([]Term, len(args))
	copy(cp, args)
	return &Expression{head, cp}
}

// List builds List[args...] (the Mathematica-style list expression)
func List(args ...Term) *Expression {
	return Apply(SymbolList, args...)
}

// Head returns the head symbol of a term; atoms report their kind
// (Number resp. Symbol), like the Head[] builtin would.
func Head(v Term) Symbol {
	switch e := v.(type) {
	case decimal.Decimal:
		if e.IsInteger() {
			return SymbolInteger
		}
		return SymbolNumber
	case Symbol:
		return SymbolSymbol
	case *Expression:
		return e.Head
	default:
		panic("unknown term type - Head")
	}
}

// AtomQ tells whether a term has no subterms.
func AtomQ(v Term) bool {
	_, ok := v.(*Expression)
	return !ok
}

// Depth counts the levels of a term; atoms have depth 1.
func Depth(v Term) int {
	e, ok := v.(*Expression)
	if !ok {
		return 1
	}
	max := 0
	for _, a := range e.Args {
		if d := Depth(a); d > max {
			max = d
		}
	}
	return max + 1
}

// Part indexes into a term: index 0 yields the head, 1..n the arguments,
// further indices descend recursively. ok is false when an index is out
// of range or descends into an atom.
func Part(v Term, indices ...int) (Term, bool) {
	if len(indices) == 0 {
		return v, true
	}
	e, ok := v.(*Expression)
	if !ok {
		return nil, false
	}
	i := indices[0]
	if i == 0 {
		if len(indices) > 1 {
			return nil, false
		}
		return e.Head, true
	}
	if i < 1 || i > len(e.Args) {
		return nil, false
	}
	return Part(e.Args[i-1], indices[1:]...)
}
