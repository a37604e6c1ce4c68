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
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Equal is purely syntactic structural equality: same variant, same head,
// recursively equal argument lists. No simplification happens here, so
// Plus[1,2] and 3 are NOT equal.
func Equal(a, b Term) bool {
	switch a_ := a.(type) {
	case decimal.Decimal:
		b_, ok := b.(decimal.Decimal)
		return ok && a_.Equal(b_)
	case Symbol:
		b_, ok := b.(Symbol)
		return ok && a_ == b_
	case *Expression:
		b_, ok := b.(*Expression)
		if !ok || a_.Head != b_.Head || len(a_.Args) != len(b_.Args) {
			return false
		}
		for i, arg := range a_.Args {
			if !Equal(arg, b_.Args[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		panic("unknown term type - Equal")
	}
}

// a Collator keeps mutable iterator state per CompareString call, so it
// must never be shared between goroutines; the pool hands every caller
// its own instance
var collators = sync.Pool{New: func() any {
	return collate.New(language.Und)
}}

// termRank orders the variants: numbers sort before symbols before applications
func termRank(v Term) int {
	switch v.(type) {
	case decimal.Decimal:
		return 0
	case Symbol:
		return 1
	case *Expression:
		return 2
	default:
		panic("unknown term type - Less")
	}
}

// Less is the canonical sort order for stable output: numbers by value,
// symbols by collation, applications by head, then argument count, then
// arguments left to right.
func Less(a, b Term) bool {
	ra, rb := termRank(a), termRank(b)
	if ra != rb {
		return ra < rb
	}
	switch a_ := a.(type) {
	case decimal.Decimal:
		return a_.Cmp(b.(decimal.Decimal)) < 0
	case Symbol:
		return SymbolLess(a_, b.(Symbol))
	case *Expression:
		b_ := b.(*Expression)
		if a_.Head != b_.Head {
			return SymbolLess(a_.Head, b_.Head)
		}
		if len(a_.Args) != len(b_.Args) {
			return len(a_.Args) < len(b_.Args)
		}
		for i, arg := range a_.Args {
			if Less(arg, b_.Args[i]) {
				return true
			}
			if Less(b_.Args[i], arg) {
				return false
			}
		}
		return false
	}
	return false
}

// SymbolLess compares symbol names collation-aware (natural sorting of
// unicode names instead of raw byte order)
func SymbolLess(a, b Symbol) bool {
	c := collators.Get().(*collate.Collator)
	res := c.CompareString(string(a), string(b))
	collators.Put(c)
	return res < 0
}
