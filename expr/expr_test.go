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
	"testing"
)

func TestEqualIsSyntactic(t *testing.T) {
	// structural equality never simplifies: Plus[1,2] != 3
	sum := Apply("Plus", Int(1), Int(2))
	if Equal(sum, Int(3)) {
		t.Fatalf("Equal(%s, 3) = true, want false (no implicit simplification)", String(sum))
	}
	if !Equal(sum, Apply("Plus", Int(1), Int(2))) {
		t.Fatalf("Equal on identical trees = false, want true")
	}
	if Equal(sum, Apply("Plus", Int(2), Int(1))) {
		t.Fatalf("Equal ignores argument order, want order-sensitive")
	}
	if Equal(Sym("x"), "x") == true {
		t.Fatalf("Equal(Symbol, foreign type) = true, want false")
	}
}

func TestEqualNumbers(t *testing.T) {
	if !Equal(Int(2), Float(2.0)) {
		t.Fatalf("2 and 2.0 denote the same exact literal")
	}
	if Equal(Int(2), Int(3)) {
		t.Fatalf("Equal(2, 3) = true, want false")
	}
	if Equal(Int(2), Sym("2")) {
		t.Fatalf("number and symbol must not compare equal")
	}
}

func TestEqualDeep(t *testing.T) {
	a := Apply("f", Apply("g", Sym("x"), Int(1)), Sym("y"))
	b := Apply("f", Apply("g", Sym("x"), Int(1)), Sym("y"))
	c := Apply("f", Apply("g", Sym("x"), Int(2)), Sym("y"))
	if !Equal(a, b) {
		t.Fatalf("deep equal trees reported unequal")
	}
	if Equal(a, c) {
		t.Fatalf("trees differing in a leaf reported equal")
	}
}

func TestApplyCopiesArgs(t *testing.T) {
	args := []Term{Int(1), Int(2)}
	e := Apply("f", args...)
	args[0] = Int(99)
	if !Equal(e.Args[0], Int(1)) {
		t.Fatalf("Apply aliases the caller's slice, want a copy")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Term
		want string
	}{
		{Int(42), "42"},
		{Sym("Pi"), "Pi"},
		{Apply("G", Int(0)), "G[0]"},
		{Apply("f", Sym("x"), Apply("g", Int(1), Int(2))), "f[x, g[1, 2]]"},
		{Apply("f"), "f[]"},
		{List(Int(1), Sym("x")), "List[1, x]"},
	}
	for _, test := range tests {
		if got := String(test.in); got != test.want {
			t.Fatalf("String = %q, want %q", got, test.want)
		}
	}
}

func TestHead(t *testing.T) {
	if got := Head(Apply("G", Int(0))); got != Symbol("G") {
		t.Fatalf("Head(G[0]) = %s, want G", got)
	}
	if got := Head(Int(5)); got != SymbolInteger {
		t.Fatalf("Head(5) = %s, want Integer", got)
	}
	if got := Head(Float(1.5)); got != SymbolNumber {
		t.Fatalf("Head(1.5) = %s, want Number", got)
	}
	if got := Head(Sym("x")); got != SymbolSymbol {
		t.Fatalf("Head(x) = %s, want Symbol", got)
	}
}

func TestDepthAndAtomQ(t *testing.T) {
	if !AtomQ(Int(1)) || !AtomQ(Sym("x")) || AtomQ(Apply("f")) {
		t.Fatalf("AtomQ misclassifies")
	}
	if got := Depth(Sym("x")); got != 1 {
		t.Fatalf("Depth(x) = %d, want 1", got)
	}
	if got := Depth(Apply("f", Apply("g", Sym("x")), Int(1))); got != 3 {
		t.Fatalf("Depth(f[g[x], 1]) = %d, want 3", got)
	}
}

func TestPart(t *testing.T) {
	e := Apply("f", Sym("x"), Apply("g", Int(1), Int(2)))
	if got, ok := Part(e, 0); !ok || got != Symbol("f") {
		t.Fatalf("Part(e, 0) = %v, want head f", got)
	}
	if got, ok := Part(e, 1); !ok || !Equal(got, Sym("x")) {
		t.Fatalf("Part(e, 1) = %v, want x", got)
	}
	if got, ok := Part(e, 2, 2); !ok || !Equal(got, Int(2)) {
		t.Fatalf("Part(e, 2, 2) = %v, want 2", got)
	}
	if _, ok := Part(e, 3); ok {
		t.Fatalf("Part out of range reported ok")
	}
	if _, ok := Part(e, 1, 1); ok {
		t.Fatalf("Part into an atom reported ok")
	}
}

func TestLessCanonicalOrder(t *testing.T) {
	// numbers < symbols < applications
	if !Less(Int(5), Sym("a")) || Less(Sym("a"), Int(5)) {
		t.Fatalf("numbers must sort before symbols")
	}
	if !Less(Sym("z"), Apply("a")) {
		t.Fatalf("symbols must sort before applications")
	}
	if !Less(Int(1), Int(2)) || Less(Int(2), Int(1)) {
		t.Fatalf("numeric order broken")
	}
	if !Less(Sym("Apple"), Sym("banana")) {
		t.Fatalf("collation order broken (case-insensitive natural order expected)")
	}
	a := Apply("f", Int(1))
	b := Apply("f", Int(1), Int(2))
	if !Less(a, b) {
		t.Fatalf("shorter argument list must sort first on equal heads")
	}
	if Less(a, Apply("f", Int(1))) {
		t.Fatalf("Less on equal terms = true, want false")
	}
}

// comparisons must not share mutable collator state: table listings and
// sorted output run in whatever goroutine asks for them, concurrently
// with rewriting. Run under -race.
func TestSymbolLessConcurrent(t *testing.T) {
	syms := []Symbol{"Apple", "ArcTan", "Gudermannian", "Tanh", "banana", "zeta"}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 500; n++ {
				for i := range syms {
					for j := range syms {
						got := SymbolLess(syms[i], syms[j])
						if got && SymbolLess(syms[j], syms[i]) {
							t.Errorf("SymbolLess(%s, %s) and its inverse both true", syms[i], syms[j])
							return
						}
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestComputeSize(t *testing.T) {
	small := ComputeSize(Sym("x"))
	big := ComputeSize(Apply("f", Sym("x"), Sym("y"), Apply("g", Int(123456789))))
	if small == 0 || big <= small {
		t.Fatalf("ComputeSize not monotone: atom %d, tree %d", small, big)
	}
	if got := HumanSize(2048); got != "2KiB" {
		t.Fatalf("HumanSize(2048) = %q, want 2KiB", got)
	}
}
