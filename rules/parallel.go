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
	"github.com/jtolds/gls"
	"github.com/launix-de/symbolic/expr"
)

// RewriteAll runs one full rewrite per input term in parallel over the
// shared read-only table. Safe as long as no Define/Unset/Clear is in
// flight (table reads are lock-free copy-on-write snapshots, so even a
// concurrent write only means some terms see the old rule set).
// A panic in any worker is collected and re-thrown in the caller.
func (rw *Rewriter) RewriteAll(terms []expr.Term) []expr.Term {
	results := make([]expr.Term, len(terms))
	if len(terms) == 0 {
		return results
	}
	errs := make(chan any, len(terms))
	for i, t := range terms {
		i, t := i, t
		gls.Go(func() {
			defer func() {
				if r := recover(); r != nil {
					errs <- r
				} else {
					errs <- nil
				}
			}()
			results[i] = rw.RewriteFully(t)
		})
	}
	for range terms {
		if err := <-errs; err != nil {
			panic(err)
		}
	}
	return results
}
