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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthTableConjunction(t *testing.T) {
	table := GetTruthTable(mustParse(t, "P & Q"))
	//
	assert.Equal(t, []string{"P", "Q"}, table.Atoms())
	require.Len(t, table.Rows(), 4)
	// Rows enumerate assignments in binary-counting order, with the first
	// atom varying slowest.
	expected := []struct {
		inputs []bool
		value  bool
	}{
		{[]bool{false, false}, false},
		{[]bool{false, true}, false},
		{[]bool{true, false}, false},
		{[]bool{true, true}, true},
	}
	//
	for i, row := range table.Rows() {
		assert.Equal(t, expected[i].inputs, row.Inputs(), "row %d", i)
		assert.Equal(t, expected[i].value, row.Value(), "row %d", i)
	}
}

func TestTruthTableAtomOrder(t *testing.T) {
	// Atoms are sorted lexicographically, regardless of occurrence order.
	table := GetTruthTable(mustParse(t, "Q | (R & P)"))
	assert.Equal(t, []string{"P", "Q", "R"}, table.Atoms())
	assert.Len(t, table.Rows(), 8)
}

func TestTruthTableTautology(t *testing.T) {
	table := GetTruthTable(mustParse(t, "P | ~P"))
	//
	require.Len(t, table.Rows(), 2)
	//
	for _, row := range table.Rows() {
		assert.True(t, row.Value())
	}
}

func TestTruthTableNoAtoms(t *testing.T) {
	// A formula with no atoms yields a single row with no inputs.
	table := GetTruthTable(mustParse(t, "true & ~false"))
	//
	assert.Empty(t, table.Atoms())
	require.Len(t, table.Rows(), 1)
	assert.Empty(t, table.Rows()[0].Inputs())
	assert.True(t, table.Rows()[0].Value())
}

func TestTruthTableAssignmentRoundTrip(t *testing.T) {
	f := mustParse(t, "(P -> Q) ^ R")
	table := GetTruthTable(f)
	// Re-evaluating under each row's assignment reproduces that row's value.
	for i, row := range table.Rows() {
		val, err := Value(Eval(f, table.Assignment(i)))
		//
		require.NoError(t, err)
		assert.Equal(t, row.Value(), val, "row %d", i)
	}
}

func TestTruthTableMatchesDecisionProcedures(t *testing.T) {
	inputs := []string{
		"P", "P & ~P", "P | ~P", "P -> Q", "(P <-> Q) ^ R",
	}
	//
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var (
				f        = mustParse(t, input)
				anyTrue  = false
				anyFalse = false
			)
			//
			table := GetTruthTable(f)
			for _, row := range table.Rows() {
				if row.Value() {
					anyTrue = true
				} else {
					anyFalse = true
				}
			}
			//
			assert.Equal(t, IsSatisfiable(f), anyTrue)
			assert.Equal(t, IsFalsifiable(f), anyFalse)
		})
	}
}
