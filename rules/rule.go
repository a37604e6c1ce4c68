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

	"github.com/google/uuid"
	"github.com/launix-de/symbolic/expr"
)

/*
 Rule is one case of a piecewise definition: when Pattern matches and
 Guard (if present) resolves to True, the rewriter instantiates Body
 with the bindings. Rules carry a uuid so single cases can be removed
 again (Unset) without disturbing the order of the rest.

 Guard and Body are templates: wildcard names bound by Pattern appear
 in them as plain symbols and get substituted on instantiation. A body
 may address another head's rule table (rule composition, e.g. a
 derivative rule producing D[...] applications); such references stay
 lazy, a later Rewrite call resolves them.
*/
type Rule struct {
	ID      uuid.UUID
	Pattern Pattern
	Guard   expr.Term // nil = unconditional
	Body    expr.Term
}

// NewRule validates eagerly (registration is the only place the engine
// fails fast) and stamps a fresh uuid.
func NewRule(pattern Pattern, guard expr.Term, body expr.Term) (Rule, error) {
	if err := validateRule(pattern, guard, body); err != nil {
		return Rule{}, err
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return Rule{}, err
	}
	return Rule{id, pattern, guard, body}, nil
}

/*
 validateRule rejects malformed rules:
  - a wildcard marker (trailing underscore symbol like z_) inside guard
    or body: templates reference wildcards by bare name, a leftover
    marker is always an authoring mistake
  - the same wildcard name declared twice with different tests: the
    second test would silently never run

 Bare symbols in templates that no wildcard binds are fine - they are
 ordinary symbolic heads (Tanh, Pi, ...), not references.
*/
func validateRule(pattern Pattern, guard expr.Term, body expr.Term) error {
	tests := make(map[string]expr.Term)
	if err := checkPatternNames(pattern, tests); err != nil {
		return err
	}
	bound := make(map[string]bool)
	names(pattern, bound)
	if err := checkTemplate("guard", guard, bound); err != nil {
		return err
	}
	return checkTemplate("body", body, bound)
}

func checkPatternNames(p Pattern, tests map[string]expr.Term) error {
	switch p_ := p.(type) {
	case Literal:
		return nil
	case Blank:
		if p_.Name == "" {
			return nil
		}
		if prev, ok := tests[p_.Name]; ok {
			equal := prev == nil && p_.Test == nil ||
				prev != nil && p_.Test != nil && expr.Equal(prev, p_.Test)
			if !equal {
				return fmt.Errorf("malformed rule: wildcard %s_ declared twice with different tests", p_.Name)
			}
			return nil
		}
		tests[p_.Name] = p_.Test
		return nil
	case Compound:
		for _, arg := range p_.Args {
			if err := checkPatternNames(arg, tests); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("malformed rule: unknown pattern type %T", p)
	}
}

func checkTemplate(what string, t expr.Term, bound map[string]bool) error {
	switch e := t.(type) {
	case expr.Symbol:
		name, isMarker := strings.CutSuffix(string(e), "_")
		if !isMarker {
			return nil
		}
		if bound[name] {
			return fmt.Errorf("malformed rule: %s references wildcard marker %s, write the bare name %s instead", what, e, name)
		}
		return fmt.Errorf("malformed rule: %s references wildcard marker %s which the pattern does not bind", what, e)
	case *expr.Expression:
		if err := checkTemplate(what, e.Head, bound); err != nil {
			return err
		}
		for _, arg := range e.Args {
			if err := checkTemplate(what, arg, bound); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil // numbers and nil are always fine
	}
}

func (r Rule) ComputeSize() uint {
	sz := uint(16) + patternSize(r.Pattern) + expr.ComputeSize(r.Body)
	if r.Guard != nil {
		sz += expr.ComputeSize(r.Guard)
	}
	return sz
}

// pretty-print for traces: pattern [/; guard] -> body
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(PatternString(r.Pattern))
	if r.Guard != nil {
		b.WriteString(" /; ")
		b.WriteString(expr.String(r.Guard))
	}
	b.WriteString(" -> ")
	b.WriteString(expr.String(r.Body))
	return b.String()
}
