// Copyright the proplog authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package logic

import (
	"fmt"
	"strings"
)

// SymbolTable maps each connective to a display string.  It is consumed only
// when rendering formulas for human eyes and has no effect whatsoever on
// semantics, parsing or evaluation.
type SymbolTable struct {
	True    string
	False   string
	Not     string
	And     string
	Or      string
	Implies string
	Iff     string
	Xor     string
}

// ASCIISymbols renders connectives using plain ASCII, matching the default
// concrete syntax accepted by the parser.
var ASCIISymbols = SymbolTable{
	True:    "true",
	False:   "false",
	Not:     "~",
	And:     "&",
	Or:      "|",
	Implies: "->",
	Iff:     "<->",
	Xor:     "^",
}

// UnicodeSymbols renders connectives using the usual logic glyphs.
var UnicodeSymbols = SymbolTable{
	True:    "⊤",
	False:   "⊥",
	Not:     "¬",
	And:     "∧",
	Or:      "∨",
	Implies: "→",
	Iff:     "↔",
	Xor:     "⊕",
}

// Merge returns a copy of this symbol table with any non-empty field of the
// overrides applied.  This allows callers to customise individual symbols
// without restating the whole table.
func (p SymbolTable) Merge(overrides SymbolTable) SymbolTable {
	merge := func(base, over string) string {
		if over != "" {
			return over
		}
		//
		return base
	}
	//
	return SymbolTable{
		True:    merge(p.True, overrides.True),
		False:   merge(p.False, overrides.False),
		Not:     merge(p.Not, overrides.Not),
		And:     merge(p.And, overrides.And),
		Or:      merge(p.Or, overrides.Or),
		Implies: merge(p.Implies, overrides.Implies),
		Iff:     merge(p.Iff, overrides.Iff),
		Xor:     merge(p.Xor, overrides.Xor),
	}
}

// Symbol returns the display string for a given binary connective.
func (p SymbolTable) Symbol(kind Connective) string {
	switch kind {
	case AND:
		return p.And
	case OR:
		return p.Or
	case IMPLIES:
		return p.Implies
	case IFF:
		return p.Iff
	case XOR:
		return p.Xor
	default:
		panic("unreachable")
	}
}

// Display precedence, used solely to decide where parentheses are required
// when rendering.  Leaves bind tightest, then negation, then the lattice
// connectives, then the arrow connectives.
func precedence(f Formula) int {
	switch t := f.(type) {
	case Constant, Atom:
		return 4
	case Not:
		return 3
	case Binary:
		switch t.Kind {
		case AND, OR:
			return 2
		default:
			return 1
		}
	default:
		panic("unreachable")
	}
}

// Format renders a formula using the given symbol table.  A subformula is
// parenthesised whenever its precedence does not exceed that of its parent,
// so e.g. Not(And(p,q)) renders as "~(p & q)" whilst And(Not(p),q) renders
// as "~p & q".
func Format(f Formula, symbols SymbolTable) string {
	switch t := f.(type) {
	case Constant:
		if t.Value {
			return symbols.True
		}
		//
		return symbols.False
	case Atom:
		return t.Name
	case Not:
		return symbols.Not + formatChild(t.Operand, precedence(f), symbols)
	case Binary:
		var (
			lhs = formatChild(t.Lhs, precedence(f), symbols)
			rhs = formatChild(t.Rhs, precedence(f), symbols)
		)
		//
		return fmt.Sprintf("%s %s %s", lhs, symbols.Symbol(t.Kind), rhs)
	default:
		panic("unreachable")
	}
}

func formatChild(child Formula, parent int, symbols SymbolTable) string {
	str := Format(child, symbols)
	//
	if precedence(child) <= parent {
		var builder strings.Builder
		//
		builder.WriteString("(")
		builder.WriteString(str)
		builder.WriteString(")")
		//
		return builder.String()
	}
	//
	return str
}

func (p Constant) String() string {
	return Format(p, ASCIISymbols)
}

func (p Atom) String() string {
	return Format(p, ASCIISymbols)
}

func (p Not) String() string {
	return Format(p, ASCIISymbols)
}

func (p Binary) String() string {
	return Format(p, ASCIISymbols)
}
