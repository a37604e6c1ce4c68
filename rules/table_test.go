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
	"strings"
	"sync"
	"testing"

	"github.com/launix-de/symbolic/expr"
)

func TestDefineOrderIsPriorityOrder(t *testing.T) {
	tbl := NewRuleTable()
	mustDefine(t, tbl, "G", Literal{expr.Int(0)}, nil, expr.Sym("first"))
	mustDefine(t, tbl, "G", Blank{Name: "z"}, nil, expr.Sym("second"))
	rules := tbl.Lookup("G")
	if len(rules) != 2 {
		t.Fatalf("Lookup = %d rules, want 2", len(rules))
	}
	if !expr.Equal(rules[0].Body, expr.Sym("first")) || !expr.Equal(rules[1].Body, expr.Sym("second")) {
		t.Fatalf("registration order not preserved: %v, %v", rules[0].Body, rules[1].Body)
	}
}

func TestDefineAt(t *testing.T) {
	tbl := NewRuleTable()
	mustDefine(t, tbl, "G", Blank{Name: "z"}, nil, expr.Sym("generic"))
	// the exact-value rule arrives later but must be tried first
	if _, err := tbl.DefineAt(0, "G", Literal{expr.Int(0)}, nil, expr.Sym("exact")); err != nil {
		t.Fatal(err)
	}
	rw := NewRewriter(tbl)
	got, _ := rw.Rewrite(expr.Apply("G", expr.Int(0)))
	if !expr.Equal(got, expr.Sym("exact")) {
		t.Fatalf("G[0] = %s, want exact (DefineAt(0) must prepend)", expr.String(got))
	}
}

func TestLookupUndefined(t *testing.T) {
	tbl := NewRuleTable()
	if rules := tbl.Lookup("Nope"); rules != nil {
		t.Fatalf("Lookup(undefined) = %v, want nil", rules)
	}
}

func TestUnsetByID(t *testing.T) {
	tbl := NewRuleTable()
	id, err := tbl.Define("G", Literal{expr.Int(0)}, nil, expr.Sym("exact"))
	if err != nil {
		t.Fatal(err)
	}
	mustDefine(t, tbl, "G", Blank{Name: "z"}, nil, expr.Sym("generic"))

	if !tbl.Unset("G", id) {
		t.Fatalf("Unset of an existing rule reported false")
	}
	if tbl.Unset("G", id) {
		t.Fatalf("second Unset of the same rule reported true")
	}
	rules := tbl.Lookup("G")
	if len(rules) != 1 || !expr.Equal(rules[0].Body, expr.Sym("generic")) {
		t.Fatalf("wrong rule removed: %v", rules)
	}
}

func TestUnsetPattern(t *testing.T) {
	// F[x_]=. removes the downvalue, F[a,b] falls back to unevaluated
	tbl := NewRuleTable()
	mustDefine(t, tbl, "F", Blank{Name: "x"}, nil, expr.Apply("H", expr.Sym("x")))
	rw := NewRewriter(tbl)

	got, _ := rw.Rewrite(expr.Apply("F", expr.Sym("a")))
	if !expr.Equal(got, expr.Apply("H", expr.Sym("a"))) {
		t.Fatalf("F[a] = %s, want H[a]", expr.String(got))
	}

	if !tbl.UnsetPattern("F", Blank{Name: "x"}) {
		t.Fatalf("UnsetPattern found nothing")
	}
	in := expr.Apply("F", expr.Sym("a"))
	got, outcome := rw.Rewrite(in)
	if outcome != Unchanged || !expr.Equal(got, in) {
		t.Fatalf("after unset F[a] = %s (%v), want unchanged", expr.String(got), outcome)
	}
	// head is gone entirely
	if tbl.Lookup("F") != nil {
		t.Fatalf("empty definition kept alive after last rule was unset")
	}
}

func TestClear(t *testing.T) {
	tbl := NewRuleTable()
	mustDefine(t, tbl, "F", Blank{Name: "x"}, nil, expr.Sym("x"))
	mustDefine(t, tbl, "F", Literal{expr.Int(0)}, nil, expr.Int(0))
	tbl.Clear("F")
	if tbl.Lookup("F") != nil {
		t.Fatalf("Clear left rules behind")
	}
	tbl.Clear("NeverDefined") // must not panic
}

func TestHeadsSorted(t *testing.T) {
	tbl := NewRuleTable()
	for _, h := range []expr.Symbol{"Zeta", "ArcTan", "gd"} {
		mustDefine(t, tbl, h, Blank{Name: "z"}, nil, expr.Sym("z"))
	}
	heads := tbl.Heads()
	want := []expr.Symbol{"ArcTan", "gd", "Zeta"} // collation order, not byte order
	if len(heads) != len(want) {
		t.Fatalf("Heads = %v, want %v", heads, want)
	}
	for i := range want {
		if heads[i] != want[i] {
			t.Fatalf("Heads = %v, want %v", heads, want)
		}
	}
}

func TestStats(t *testing.T) {
	tbl := NewRuleTable()
	mustDefine(t, tbl, "G", Literal{expr.Int(0)}, nil, expr.Int(0))
	mustDefine(t, tbl, "G", Blank{Name: "z"}, nil, expr.Sym("z"))
	stats := tbl.Stats()
	if !strings.Contains(stats, "G: 2 rules") {
		t.Fatalf("Stats output missing rule count: %q", stats)
	}
	if !strings.Contains(stats, "total:") {
		t.Fatalf("Stats output missing size: %q", stats)
	}
	if tbl.ComputeSize() == 0 {
		t.Fatalf("ComputeSize = 0 for a non-empty table")
	}
}

func TestConcurrentReadersDuringWrites(t *testing.T) {
	// readers must never block or observe a torn rule list while a
	// writer swaps definitions in
	tbl := NewRuleTable()
	mustDefine(t, tbl, "G", Literal{expr.Int(0)}, nil, expr.Sym("A"))
	rw := NewRewriter(tbl)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				got, outcome := rw.Rewrite(expr.Apply("G", expr.Int(0)))
				if outcome != Rewritten || !expr.Equal(got, expr.Sym("A")) {
					panic(fmt.Sprintf("reader saw %s (%v)", expr.String(got), outcome))
				}
			}
		}()
	}
	for i := 0; i < 200; i++ {
		head := expr.Symbol(fmt.Sprintf("H%d", i))
		mustDefine(t, tbl, head, Blank{Name: "z"}, nil, expr.Sym("z"))
	}
	close(stop)
	wg.Wait()
	if got := len(tbl.Heads()); got != 201 {
		t.Fatalf("Heads = %d entries, want 201", got)
	}
}
