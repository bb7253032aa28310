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

import "slices"

// The decision procedures below enumerate all assignments over the finite
// atom set of their operands, and so always terminate.  Their cost is
// O(2^n) in the number of distinct atoms; callers wishing to bound the
// worst case should impose an atom-count ceiling themselves, since none is
// imposed here.

// IsTautology determines whether a formula evaluates to true under every
// possible total assignment over its atoms.  A formula with no atoms
// evaluates directly as a constant.
func IsTautology(f Formula) bool {
	return forEachAssignment(sortedAtoms(f), func(_ []bool, interpretation Interpretation) bool {
		return constantValue(f, interpretation)
	})
}

// IsContradiction determines whether a formula evaluates to false under
// every possible total assignment over its atoms.
func IsContradiction(f Formula) bool {
	return IsTautology(Not{f})
}

// IsSatisfiable determines whether at least one assignment makes the formula
// true.
func IsSatisfiable(f Formula) bool {
	return !IsContradiction(f)
}

// IsFalsifiable determines whether at least one assignment makes the formula
// false.
func IsFalsifiable(f Formula) bool {
	return !IsTautology(f)
}

// IsEquivalent determines whether two formulas take the same value under
// every assignment over the union of their atom sets.
func IsEquivalent(f, g Formula) bool {
	atoms := unionAtoms(f, g)
	//
	return forEachAssignment(atoms, func(_ []bool, interpretation Interpretation) bool {
		return constantValue(f, interpretation) == constantValue(g, interpretation)
	})
}

// SatisfyingAssignments returns every assignment over the formula's atoms
// under which it evaluates to true, in truth-table (binary counting) order.
// A tautology over n atoms yields all 2^n assignments; a contradiction
// yields none.
func SatisfyingAssignments(f Formula) []Interpretation {
	var satisfying []Interpretation
	//
	forEachAssignment(sortedAtoms(f), func(_ []bool, interpretation Interpretation) bool {
		if constantValue(f, interpretation) {
			satisfying = append(satisfying, interpretation)
		}
		//
		return true
	})
	//
	return satisfying
}

// FalsifyingAssignments returns every assignment over the formula's atoms
// under which it evaluates to false, in truth-table (binary counting) order.
// A contradiction over n atoms yields all 2^n assignments; a tautology
// yields none.
func FalsifyingAssignments(f Formula) []Interpretation {
	var falsifying []Interpretation
	//
	forEachAssignment(sortedAtoms(f), func(_ []bool, interpretation Interpretation) bool {
		if !constantValue(f, interpretation) {
			falsifying = append(falsifying, interpretation)
		}
		//
		return true
	})
	//
	return falsifying
}

// constantValue evaluates a formula under an assignment known to cover all
// of its atoms.
func constantValue(f Formula, interpretation Interpretation) bool {
	val, err := Value(Eval(f, interpretation))
	if err != nil {
		panic("unreachable: assignment is total")
	}
	//
	return val
}

// unionAtoms returns the union of the atom sets of two formulas, in
// lexicographic order.
func unionAtoms(f, g Formula) []string {
	atoms := Atoms(f)
	//
	for _, atom := range Atoms(g) {
		if !slices.Contains(atoms, atom) {
			atoms = append(atoms, atom)
		}
	}
	//
	slices.Sort(atoms)
	//
	return atoms
}
