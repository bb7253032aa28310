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
package lex

import (
	"testing"

	"github.com/srsviegas/proplog/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEOF uint = iota
	testSpace
	testDigits
	testPlus
)

// testRules builds a small rule set for lexing sums of natural numbers, which
// suffices to exercise the lexer machinery.
func testRules() []LexRule[rune] {
	return []LexRule[rune]{
		Rule(Many(Unit(' ')), testSpace),
		Rule(And(Within('0', '9'), Many(Within('0', '9'))), testDigits),
		Rule(Unit('+'), testPlus),
		Rule(Eof[rune](), testEOF),
	}
}

func TestLexerCollect(t *testing.T) {
	lexer := NewLexer([]rune("12 + 345"), testRules()...)
	tokens := lexer.Collect()
	//
	require.Len(t, tokens, 6)
	//
	expected := []Token{
		{testDigits, source.NewSpan(0, 2)},
		{testSpace, source.NewSpan(2, 3)},
		{testPlus, source.NewSpan(3, 4)},
		{testSpace, source.NewSpan(4, 5)},
		{testDigits, source.NewSpan(5, 8)},
		{testEOF, source.NewSpan(8, 8)},
	}
	//
	assert.Equal(t, expected, tokens)
	assert.Equal(t, uint(0), lexer.Remaining())
}

func TestLexerEmptyInput(t *testing.T) {
	lexer := NewLexer([]rune(""), testRules()...)
	tokens := lexer.Collect()
	//
	require.Len(t, tokens, 1)
	assert.Equal(t, testEOF, tokens[0].Kind)
	assert.Equal(t, source.NewSpan(0, 0), tokens[0].Span)
}

func TestLexerFirstMatchWins(t *testing.T) {
	// Rules are attempted in declaration order.
	rules := []LexRule[rune]{
		Rule(String("ab"), 1),
		Rule(Unit('a'), 2),
	}
	//
	tokens := NewLexer([]rune("aba"), rules...).Collect()
	//
	require.Len(t, tokens, 2)
	assert.Equal(t, uint(1), tokens[0].Kind)
	assert.Equal(t, uint(2), tokens[1].Kind)
}

func TestLexerRemaining(t *testing.T) {
	// Lexing stops at the first character no rule accepts, leaving the rest.
	lexer := NewLexer([]rune("12x34"), testRules()...)
	tokens := lexer.Collect()
	//
	require.Len(t, tokens, 1)
	assert.Equal(t, uint(2), lexer.Index())
	assert.Equal(t, uint(3), lexer.Remaining())
}

func TestScanners(t *testing.T) {
	tests := []struct {
		name     string
		scanner  Scanner[rune]
		input    string
		expected uint
	}{
		{"unit match", Unit('a'), "abc", 1},
		{"unit fail", Unit('a'), "xbc", 0},
		{"unit multi", Unit('a', 'b'), "abc", 2},
		{"unit short", Unit('a', 'b'), "a", 0},
		{"string match", String("->"), "->x", 2},
		{"string fail", String("->"), "-x", 0},
		{"within match", Within('a', 'z'), "m", 1},
		{"within fail", Within('a', 'z'), "M", 0},
		{"within empty", Within('a', 'z'), "", 0},
		{"many zero", Many(Unit('a')), "bbb", 0},
		{"many several", Many(Unit('a')), "aaab", 3},
		{"or first", Or(Unit('a'), Unit('b')), "a", 1},
		{"or second", Or(Unit('a'), Unit('b')), "b", 1},
		{"or fail", Or(Unit('a'), Unit('b')), "c", 0},
		{"and longest", And(Unit('a'), Many(Within('a', 'z'))), "abc", 3},
		{"and fail", And(Unit('a'), Many(Within('a', 'z'))), "1bc", 0},
		{"eof match", Eof[rune](), "", 1},
		{"eof fail", Eof[rune](), "a", 0},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.scanner([]rune(tt.input)))
		})
	}
}
