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

// Connective identifies one of the binary connectives of propositional logic.
type Connective uint8

const (
	// AND represents logical conjunction.
	AND Connective = iota
	// OR represents logical disjunction.
	OR
	// IMPLIES represents logical implication.
	IMPLIES
	// IFF represents logical equivalence (the biconditional).
	IFF
	// XOR represents exclusive disjunction, i.e. the negation of IFF.
	XOR
)

// Formula represents an immutable propositional formula.  A formula is a
// finite tree whose leaves are constants or named atoms, and whose interior
// nodes apply a unary or binary connective to subformulas.  The variants are
// exactly Constant, Atom, Not and Binary; the interface is sealed so that
// traversals can switch exhaustively over them.
type Formula interface {
	// String returns the formula rendered with the ASCII symbol table.
	String() string
	// sealed restricts implementations of Formula to this package.
	sealed()
}

// Constant represents one of the logical constants true or false.
type Constant struct {
	Value bool
}

// Atom represents a propositional variable identified by name.  Two atoms
// are equal exactly when their names are equal.
type Atom struct {
	Name string
}

// Not represents the negation of its operand.
type Not struct {
	Operand Formula
}

// Binary represents the application of a binary connective to two
// subformulas.
type Binary struct {
	Kind Connective
	Lhs  Formula
	Rhs  Formula
}

func (p Constant) sealed() {}
func (p Atom) sealed()     {}
func (p Not) sealed()      {}
func (p Binary) sealed()   {}

// True is the constant formula denoting logical truth.
var True Formula = Constant{true}

// False is the constant formula denoting logical falsehood.
var False Formula = Constant{false}

// NewAtom constructs an atom with the given name.  Names are case-sensitive,
// non-empty sequences of letters, digits and underscores which do not start
// with a digit; the literals "true" and "false" are reserved.  Malformed
// names are rejected with an InvalidAtomNameError.
func NewAtom(name string) (Formula, error) {
	if !ValidAtomName(name) {
		return nil, &InvalidAtomNameError{name}
	}
	//
	return Atom{name}, nil
}

// ValidAtomName checks whether a given string is acceptable as an atom name.
func ValidAtomName(name string) bool {
	if name == "" || name == "true" || name == "false" {
		return false
	}
	//
	for i, c := range name {
		switch {
		case c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z'):
			// letters and underscore allowed anywhere
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	//
	return true
}

// Negation constructs the negation of a given formula.
func Negation(f Formula) Formula {
	return Not{f}
}

// Conjunction constructs the conjunction of two formulas.
func Conjunction(lhs, rhs Formula) Formula {
	return Binary{AND, lhs, rhs}
}

// Disjunction constructs the disjunction of two formulas.
func Disjunction(lhs, rhs Formula) Formula {
	return Binary{OR, lhs, rhs}
}

// Implication constructs an implication from lhs to rhs.
func Implication(lhs, rhs Formula) Formula {
	return Binary{IMPLIES, lhs, rhs}
}

// Biconditional constructs the equivalence of two formulas.
func Biconditional(lhs, rhs Formula) Formula {
	return Binary{IFF, lhs, rhs}
}

// ExclusiveOr constructs the exclusive disjunction of two formulas.
func ExclusiveOr(lhs, rhs Formula) Formula {
	return Binary{XOR, lhs, rhs}
}

// IsAtomic determines whether a given formula is an atom or a constant (i.e.
// a leaf of the tree).
func IsAtomic(f Formula) bool {
	switch f.(type) {
	case Constant, Atom:
		return true
	default:
		return false
	}
}

// Equal determines whether two formulas are structurally identical.  This is
// defined recursively on variant and children, not on identity; it is not a
// semantic equivalence check (see IsEquivalent for that).
func Equal(f, g Formula) bool {
	switch ft := f.(type) {
	case Constant:
		gt, ok := g.(Constant)
		return ok && ft.Value == gt.Value
	case Atom:
		gt, ok := g.(Atom)
		return ok && ft.Name == gt.Name
	case Not:
		gt, ok := g.(Not)
		return ok && Equal(ft.Operand, gt.Operand)
	case Binary:
		gt, ok := g.(Binary)
		return ok && ft.Kind == gt.Kind && Equal(ft.Lhs, gt.Lhs) && Equal(ft.Rhs, gt.Rhs)
	default:
		panic("unreachable")
	}
}
