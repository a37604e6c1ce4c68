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
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/launix-de/NonLockingReadMap"
	"github.com/launix-de/symbolic/expr"
)

/*
 RuleTable maps a head symbol to its ordered rule list.

 Registration order is priority order: first defined, first tried.
 This is a documented contract, not an artifact - piecewise definitions
 rely on it (the exact-value rule for G[0] must sit before the generic
 G[z_] rule).

 Reads are lock-free (NonLockingReadMap keeps a copy-on-write sorted
 list), so any number of rewriters can share one table. Rule slices are
 never mutated in place; every write swaps in a fresh slice. Writers are
 serialized by a mutex.
*/
type RuleTable struct {
	defs NonLockingReadMap.NonLockingReadMap[definition, string]
	mu   sync.Mutex // serializes writers; readers never block
}

type definition struct {
	head  string
	rules []Rule
}

/* implement NonLockingReadMap */
func (d definition) GetKey() string {
	return d.head
}
func (d definition) ComputeSize() uint {
	sz := uint(48) + align8(uint(len(d.head)))
	for _, r := range d.rules {
		sz += r.ComputeSize()
	}
	return sz
}

func NewRuleTable() *RuleTable {
	return &RuleTable{defs: NonLockingReadMap.New[definition, string]()}
}

// Define appends a rule for head with lowest priority (tried last).
// A malformed rule fails this call and leaves the table untouched.
func (t *RuleTable) Define(head expr.Symbol, pattern Pattern, guard expr.Term, body expr.Term) (uuid.UUID, error) {
	return t.DefineAt(-1, head, pattern, guard, body)
}

// DefineAt inserts a rule at an explicit priority position; pos -1 or
// anything past the end appends.
func (t *RuleTable) DefineAt(pos int, head expr.Symbol, pattern Pattern, guard expr.Term, body expr.Term) (uuid.UUID, error) {
	rule, err := NewRule(normalizePattern(head, pattern), guard, body)
	if err != nil {
		return uuid.UUID{}, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	old := t.lookupDef(head)
	if pos < 0 || pos > len(old) {
		pos = len(old)
	}
	rules := make([]Rule, 0, len(old)+1)
	rules = append(rules, old[:pos]...)
	rules = append(rules, rule)
	rules = append(rules, old[pos:]...)
	d := definition{string(head), rules}
	t.defs.Set(&d)
	return rule.ID, nil
}

/*
 normalizePattern resolves the shorthand the fragment notation uses:
 a rule for head G may be given either as the full application pattern
 G[...], or as a bare argument pattern standing for the single argument
 (so Literal(0) for head G reads as G[0], Blank{"z"} as G[z_]). The
 table always stores the full form.
*/
func normalizePattern(head expr.Symbol, p Pattern) Pattern {
	if c, ok := p.(Compound); ok && c.Head == head {
		return p
	}
	return Compound{head, []Pattern{p}}
}

// Lookup returns the ordered rule list for a head, nil when undefined.
// The returned slice is immutable (copy-on-write discipline).
func (t *RuleTable) Lookup(head expr.Symbol) []Rule {
	return t.lookupDef(head)
}

func (t *RuleTable) lookupDef(head expr.Symbol) []Rule {
	d := t.defs.Get(string(head))
	if d == nil {
		return nil
	}
	return d.rules
}

// Unset removes the one rule with the given id; reports whether a rule
// was removed. The relative order of the remaining rules is preserved.
func (t *RuleTable) Unset(head expr.Symbol, id uuid.UUID) bool {
	return t.removeMatching(head, func(r Rule) bool { return r.ID == id })
}

// UnsetPattern removes every rule whose pattern is structurally equal
// to the given one (the F[x_]=. idiom).
func (t *RuleTable) UnsetPattern(head expr.Symbol, pattern Pattern) bool {
	p := normalizePattern(head, pattern)
	return t.removeMatching(head, func(r Rule) bool { return patternEqual(r.Pattern, p) })
}

func (t *RuleTable) removeMatching(head expr.Symbol, drop func(Rule) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	old := t.lookupDef(head)
	if old == nil {
		return false
	}
	rules := make([]Rule, 0, len(old))
	for _, r := range old {
		if !drop(r) {
			rules = append(rules, r)
		}
	}
	if len(rules) == len(old) {
		return false
	}
	if len(rules) == 0 {
		t.defs.Remove(string(head))
		return true
	}
	d := definition{string(head), rules}
	t.defs.Set(&d)
	return true
}

// Clear drops all rules of a head; the head is undefined afterwards.
func (t *RuleTable) Clear(head expr.Symbol) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.defs.Remove(string(head))
}

// Heads lists all defined heads in collation order.
func (t *RuleTable) Heads() []expr.Symbol {
	all := t.defs.GetAll()
	heads := make([]expr.Symbol, 0, len(all))
	for _, d := range all {
		heads = append(heads, expr.Symbol(d.head))
	}
	sort.Slice(heads, func(i, j int) bool {
		return expr.SymbolLess(heads[i], heads[j])
	})
	return heads
}

func (t *RuleTable) ComputeSize() uint {
	return t.defs.ComputeSize()
}

// Stats pretty-prints the table for dashboards: per head the rule count,
// plus a human-readable total memory estimate.
func (t *RuleTable) Stats() string {
	var b strings.Builder
	for _, head := range t.Heads() {
		fmt.Fprintf(&b, "%s: %d rules\n", head, len(t.Lookup(head)))
	}
	fmt.Fprintf(&b, "total: %s\n", expr.HumanSize(t.ComputeSize()))
	return b.String()
}
