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
	"slices"
)

// TruthTable records the value of a formula under every total assignment
// over its atoms.  Atoms are held in lexicographic order and rows enumerate
// assignments in standard binary-counting order (false=0, true=1, with the
// first atom varying slowest).  A formula over n distinct atoms yields
// exactly 2^n rows; a formula with no atoms yields a single row holding its
// constant value.
type TruthTable struct {
	atoms []string
	rows  []Row
}

// Row is a single line of a truth table: one input value per atom, together
// with the value the formula takes under that assignment.
type Row struct {
	inputs []bool
	value  bool
}

// Inputs returns the truth values assigned to the atoms in this row, aligned
// with the table's atom order.
func (p *Row) Inputs() []bool {
	return p.inputs
}

// Value returns the value the formula takes in this row.
func (p *Row) Value() bool {
	return p.value
}

// GetTruthTable enumerates all assignments over the atoms of a formula and
// records the evaluation result for each.
func GetTruthTable(f Formula) TruthTable {
	var (
		atoms = sortedAtoms(f)
		rows  = make([]Row, 0, 1<<uint(len(atoms)))
	)
	//
	forEachAssignment(atoms, func(inputs []bool, interpretation Interpretation) bool {
		val, err := Value(Eval(f, interpretation))
		if err != nil {
			panic("unreachable: assignment is total")
		}
		//
		rows = append(rows, Row{slices.Clone(inputs), val})
		//
		return true
	})
	//
	return TruthTable{atoms, rows}
}

// Atoms returns the atom names of this table, in lexicographic order.
func (p *TruthTable) Atoms() []string {
	return p.atoms
}

// Rows returns all rows of this table, in binary-counting order.
func (p *TruthTable) Rows() []Row {
	return p.rows
}

// Assignment reconstructs the interpretation corresponding to a given row.
func (p *TruthTable) Assignment(row int) Interpretation {
	interpretation := make(Interpretation, len(p.atoms))
	//
	for i, atom := range p.atoms {
		interpretation[atom] = p.rows[row].inputs[i]
	}
	//
	return interpretation
}

// sortedAtoms returns the distinct atoms of a formula in lexicographic
// order, as used for truth-table enumeration.
func sortedAtoms(f Formula) []string {
	atoms := Atoms(f)
	slices.Sort(atoms)
	//
	return atoms
}

// forEachAssignment enumerates every total assignment over the given atoms
// in binary-counting order, invoking the callback with both the raw input
// vector (aligned with atoms, reused across calls) and the equivalent
// interpretation.  Enumeration stops early if the callback returns false;
// the overall result indicates whether every callback returned true.
func forEachAssignment(atoms []string, fn func([]bool, Interpretation) bool) bool {
	var (
		n      = len(atoms)
		inputs = make([]bool, n)
	)
	//
	for row := uint64(0); row < 1<<uint(n); row++ {
		interpretation := make(Interpretation, n)
		// The first atom occupies the most significant bit, so it varies
		// slowest.
		for j := 0; j < n; j++ {
			bit := row >> uint(n-1-j) & 1
			inputs[j] = bit == 1
			interpretation[atoms[j]] = inputs[j]
		}
		//
		if !fn(inputs, interpretation) {
			return false
		}
	}
	//
	return true
}
