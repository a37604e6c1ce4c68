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
	"strings"

	"github.com/shopspring/decimal"
)

// String renders a term in bracket notation: F[a, b], nested as needed.
// The output reparses in any Mathematica-style frontend; this kernel
// itself does not parse (the builder API is the input surface).
func String(v Term) string {
	var b strings.Builder
	writeTerm(&b, v)
	return b.String()
}

func writeTerm(b *strings.Builder, v Term) {
	switch e := v.(type) {
	case decimal.Decimal:
		b.WriteString(e.String())
	case Symbol:
		b.WriteString(string(e))
	case *Expression:
		b.WriteString(string(e.Head))
		b.WriteByte('[')
		for i, arg := range e.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeTerm(b, arg)
		}
		b.WriteByte(']')
	case nil:
		b.WriteString("Null")
	default:
		panic("unknown term type - String")
	}
}
