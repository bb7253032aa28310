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
package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/srsviegas/proplog/pkg/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSymbolsFile drops a symbols file into a temporary directory, returning
// its path.
func writeSymbolsFile(t *testing.T, contents string) string {
	t.Helper()
	//
	path := filepath.Join(t.TempDir(), "symbols.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	//
	return path
}

func TestLoadSymbolsFileDisplay(t *testing.T) {
	path := writeSymbolsFile(t, `
[display]
not = "-"
implies = "=>"
`)
	//
	symbols, syntax, err := loadSymbolsFile(path, logic.ASCIISymbols)
	require.NoError(t, err)
	// Overridden entries
	assert.Equal(t, "-", symbols.Not)
	assert.Equal(t, "=>", symbols.Implies)
	// Untouched entries fall back to the base table.
	assert.Equal(t, logic.ASCIISymbols.And, symbols.And)
	assert.Equal(t, logic.ASCIISymbols.True, symbols.True)
	// Parsing syntax is unaffected by display overrides.
	assert.Equal(t, logic.DefaultSyntax(), syntax)
}

func TestLoadSymbolsFileSyntax(t *testing.T) {
	path := writeSymbolsFile(t, `
[syntax]
implies = ["=>", "->"]
not = ["-"]
`)
	//
	symbols, syntax, err := loadSymbolsFile(path, logic.ASCIISymbols)
	require.NoError(t, err)
	// Overridden connectives replace the default spellings entirely.
	assert.Equal(t, []string{"=>", "->"}, syntax.Implies)
	assert.Equal(t, []string{"-"}, syntax.Not)
	// Unmentioned connectives keep their defaults.
	assert.Equal(t, logic.DefaultSyntax().And, syntax.And)
	// Display symbols are unaffected.
	assert.Equal(t, logic.ASCIISymbols, symbols)
}

func TestLoadSymbolsFileEmpty(t *testing.T) {
	path := writeSymbolsFile(t, "")
	//
	symbols, syntax, err := loadSymbolsFile(path, logic.UnicodeSymbols)
	require.NoError(t, err)
	assert.Equal(t, logic.UnicodeSymbols, symbols)
	assert.Equal(t, logic.DefaultSyntax(), syntax)
}

func TestLoadSymbolsFileMissing(t *testing.T) {
	_, _, err := loadSymbolsFile(filepath.Join(t.TempDir(), "nope.toml"), logic.ASCIISymbols)
	assert.Error(t, err)
}

func TestLoadSymbolsFileMalformed(t *testing.T) {
	path := writeSymbolsFile(t, "[display\nnot =")
	//
	_, _, err := loadSymbolsFile(path, logic.ASCIISymbols)
	assert.Error(t, err)
}

func TestParseBindings(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected logic.Interpretation
	}{
		{"empty", nil, logic.Interpretation{}},
		{"single", []string{"P=true"}, logic.Interpretation{"P": true}},
		{"comma separated", []string{"P=true,Q=false"},
			logic.Interpretation{"P": true, "Q": false}},
		{"repeated flag", []string{"P=1", "Q=0"},
			logic.Interpretation{"P": true, "Q": false}},
		{"spaces", []string{" P=true , Q=false "},
			logic.Interpretation{"P": true, "Q": false}},
		{"last wins", []string{"P=true", "P=false"},
			logic.Interpretation{"P": false}},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseBindings(tt.items))
		})
	}
}
