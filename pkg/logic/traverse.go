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

// Atoms returns the distinct atom names appearing in a formula, in
// first-occurrence (pre-order) order.  The order is irrelevant for semantic
// purposes, but keeping it stable helps display and debugging.
func Atoms(f Formula) []string {
	var (
		seen  = make(map[string]bool)
		atoms []string
	)
	//
	walkAtoms(f, seen, &atoms)
	//
	return atoms
}

func walkAtoms(f Formula, seen map[string]bool, atoms *[]string) {
	switch t := f.(type) {
	case Constant:
		// no atoms
	case Atom:
		if !seen[t.Name] {
			seen[t.Name] = true
			*atoms = append(*atoms, t.Name)
		}
	case Not:
		walkAtoms(t.Operand, seen, atoms)
	case Binary:
		walkAtoms(t.Lhs, seen, atoms)
		walkAtoms(t.Rhs, seen, atoms)
	}
}

// Subformulas returns every node of the tree in pre-order, including the
// formula itself and all leaves.  One entry is produced per tree position;
// hence, duplicates arise whenever the same substructure occurs in two
// positions.
func Subformulas(f Formula) []Formula {
	var subs []Formula
	//
	walkSubformulas(f, &subs)
	//
	return subs
}

func walkSubformulas(f Formula, subs *[]Formula) {
	*subs = append(*subs, f)
	//
	switch t := f.(type) {
	case Not:
		walkSubformulas(t.Operand, subs)
	case Binary:
		walkSubformulas(t.Lhs, subs)
		walkSubformulas(t.Rhs, subs)
	}
}

// Substitute replaces every occurrence of each named atom with its mapped
// formula.  All replacements are applied simultaneously over the original
// tree; atoms introduced by a replacement are never themselves substituted,
// avoiding interference when a replacement mentions a substituted name.
func Substitute(f Formula, mapping map[string]Formula) Formula {
	switch t := f.(type) {
	case Constant:
		return t
	case Atom:
		if g, ok := mapping[t.Name]; ok {
			return g
		}
		//
		return t
	case Not:
		return Not{Substitute(t.Operand, mapping)}
	case Binary:
		return Binary{t.Kind, Substitute(t.Lhs, mapping), Substitute(t.Rhs, mapping)}
	default:
		panic("unreachable")
	}
}
