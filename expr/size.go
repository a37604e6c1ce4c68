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
	"github.com/docker/go-units"
	"github.com/shopspring/decimal"
)

const (
	interfaceOverhead = uint(16) // fat pointer in the Term union
	goAllocOverhead   = uint(16)
)

type Sizable interface {
	ComputeSize() uint
}

// ComputeSize approximates the total memory consumption of a term,
// including the inline representation and any heap allocations it
// references. Shared subtrees are counted per reference.
func ComputeSize(v Term) uint {
	switch e := v.(type) {
	case nil:
		return interfaceOverhead
	case decimal.Decimal:
		// decimal wraps a big.Int; estimate mantissa words via string length
		return interfaceOverhead + goAllocOverhead + align8(uint(len(e.String())))
	case Symbol:
		if len(e) == 0 {
			return interfaceOverhead
		}
		return interfaceOverhead + goAllocOverhead + align8(uint(len(e)))
	case *Expression:
		sz := interfaceOverhead + goAllocOverhead + align8(uint(len(e.Head)))
		if len(e.Args) > 0 {
			sz += goAllocOverhead
			for _, arg := range e.Args {
				sz += ComputeSize(arg)
			}
		}
		return sz
	default:
		return interfaceOverhead
	}
}

// HumanSize renders a byte count for dashboards and stats output.
func HumanSize(sz uint) string {
	return units.BytesSize(float64(sz))
}

func align8(n uint) uint {
	if n == 0 {
		return 0
	}
	if r := n & 7; r != 0 {
		return n + (8 - r)
	}
	return n
}
