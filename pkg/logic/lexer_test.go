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

	"github.com/srsviegas/proplog/pkg/util/source"
	"github.com/srsviegas/proplog/pkg/util/source/lex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustLex tokenises an input under the default syntax, failing the test on a
// lexing error.
func mustLex(t *testing.T, input string) []lex.Token {
	t.Helper()
	//
	tokens, err := Lex(source.NewSourceFile("test", []byte(input)), DefaultSyntax())
	require.Nil(t, err)
	//
	return tokens
}

func TestLexTokenKinds(t *testing.T) {
	tests := []struct {
		input string
		kinds []uint
	}{
		{"", []uint{tokEOF}},
		{"   \t\n", []uint{tokEOF}},
		{"P", []uint{tokIdentifier, tokEOF}},
		{"(", []uint{tokLParen, tokEOF}},
		{")", []uint{tokRParen, tokEOF}},
		{"~", []uint{tokNot, tokEOF}},
		{"!", []uint{tokNot, tokEOF}},
		{"&", []uint{tokAnd, tokEOF}},
		{"&&", []uint{tokAnd, tokEOF}},
		{"|", []uint{tokOr, tokEOF}},
		{"||", []uint{tokOr, tokEOF}},
		{"->", []uint{tokImplies, tokEOF}},
		{">>", []uint{tokImplies, tokEOF}},
		{"<->", []uint{tokIff, tokEOF}},
		{"<=>", []uint{tokIff, tokEOF}},
		{"^", []uint{tokXor, tokEOF}},
		{"P & Q", []uint{tokIdentifier, tokAnd, tokIdentifier, tokEOF}},
		{"~(P||Q)", []uint{
			tokNot, tokLParen, tokIdentifier, tokOr, tokIdentifier,
			tokRParen, tokEOF}},
		// Boolean literals lex as identifiers.
		{"true", []uint{tokIdentifier, tokEOF}},
		{"false", []uint{tokIdentifier, tokEOF}},
	}
	//
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := mustLex(t, tt.input)
			//
			require.Len(t, tokens, len(tt.kinds))
			//
			for i, kind := range tt.kinds {
				assert.Equal(t, kind, tokens[i].Kind, "token %d", i)
			}
		})
	}
}

func TestLexSpans(t *testing.T) {
	tokens := mustLex(t, "P && Qx")
	//
	require.Len(t, tokens, 4)
	//
	assert.Equal(t, source.NewSpan(0, 1), tokens[0].Span)
	assert.Equal(t, source.NewSpan(2, 4), tokens[1].Span)
	assert.Equal(t, source.NewSpan(5, 7), tokens[2].Span)
	assert.Equal(t, source.NewSpan(7, 7), tokens[3].Span)
}

func TestLexLongestMatch(t *testing.T) {
	// "&&" must never lex as two "&" tokens, and "<->" must not lex as "<"
	// followed by "->".
	tokens := mustLex(t, "P&&Q")
	//
	require.Len(t, tokens, 4)
	assert.Equal(t, tokAnd, tokens[1].Kind)
	assert.Equal(t, source.NewSpan(1, 3), tokens[1].Span)
}

func TestLexIdentifiers(t *testing.T) {
	tests := []string{"P", "p", "_x", "P1", "rain_today", "Truthy", "x_1_y"}
	//
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tokens := mustLex(t, input)
			//
			require.Len(t, tokens, 2)
			assert.Equal(t, tokIdentifier, tokens[0].Kind)
			assert.Equal(t, len(input), tokens[0].Span.Length())
		})
	}
}

func TestLexUnknownToken(t *testing.T) {
	tests := []struct {
		input string
		start int
	}{
		{"#", 0},
		{"P @ Q", 2},
		{"P & Q %", 6},
		{"1P", 0},
	}
	//
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Lex(source.NewSourceFile("test", []byte(tt.input)), DefaultSyntax())
			//
			require.NotNil(t, err)
			//
			span := err.Span()
			assert.Equal(t, tt.start, span.Start())
		})
	}
}

func TestLexCustomSyntax(t *testing.T) {
	syntax := DefaultSyntax()
	syntax.Implies = []string{"==>"}
	//
	tokens, err := Lex(source.NewSourceFile("test", []byte("P ==> Q")), syntax)
	//
	require.Nil(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, tokImplies, tokens[1].Kind)
	// The default spelling is no longer recognised.
	_, err = Lex(source.NewSourceFile("test", []byte("P -> Q")), syntax)
	require.NotNil(t, err)
}
