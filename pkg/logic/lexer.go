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
	"sort"

	"github.com/srsviegas/proplog/pkg/util/source"
	"github.com/srsviegas/proplog/pkg/util/source/lex"
)

// tokEOF signals the end of the input.
const tokEOF uint = 0

// tokWhitespace signals one or more whitespace characters.
const tokWhitespace uint = 1

// tokLParen signals "("
const tokLParen uint = 2

// tokRParen signals ")"
const tokRParen uint = 3

// tokNot signals a negation symbol.
const tokNot uint = 4

// tokAnd signals a conjunction symbol.
const tokAnd uint = 5

// tokOr signals a disjunction symbol.
const tokOr uint = 6

// tokImplies signals an implication symbol.
const tokImplies uint = 7

// tokIff signals a biconditional symbol.
const tokIff uint = 8

// tokXor signals an exclusive disjunction symbol.
const tokXor uint = 9

// tokIdentifier signals an atom name or boolean literal.
const tokIdentifier uint = 10

// Syntax defines the concrete symbols accepted by the lexer for each
// connective.  Several alternative spellings may be given per connective;
// parenthesis, whitespace and identifier syntax is fixed.
type Syntax struct {
	Not     []string
	And     []string
	Or      []string
	Implies []string
	Iff     []string
	Xor     []string
}

// DefaultSyntax returns the symbols accepted when no custom syntax is given.
func DefaultSyntax() Syntax {
	return Syntax{
		Not:     []string{"~", "!"},
		And:     []string{"&&", "&"},
		Or:      []string{"||", "|"},
		Implies: []string{"->", ">>"},
		Iff:     []string{"<->", "<=>"},
		Xor:     []string{"^"},
	}
}

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r'), lex.Unit('\n')))

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers.  The boolean literals "true" and "false"
// lex as identifiers and are resolved by the parser, so that e.g. "truer"
// remains a single atom.
var identifier lex.Scanner[rune] = lex.And(identifierStart, identifierRest)

// lexRules assembles the lexing rules for a given syntax.  Connective
// symbols are tried longest first, so that e.g. "&&" is never split into two
// "&" tokens.
func lexRules(syntax Syntax) []lex.LexRule[rune] {
	type symbolRule struct {
		symbol string
		tag    uint
	}
	//
	var symbols []symbolRule
	//
	add := func(tag uint, spellings []string) {
		for _, s := range spellings {
			symbols = append(symbols, symbolRule{s, tag})
		}
	}
	//
	add(tokNot, syntax.Not)
	add(tokAnd, syntax.And)
	add(tokOr, syntax.Or)
	add(tokImplies, syntax.Implies)
	add(tokIff, syntax.Iff)
	add(tokXor, syntax.Xor)
	// Longest symbols take priority.
	sort.SliceStable(symbols, func(i, j int) bool {
		return len(symbols[i].symbol) > len(symbols[j].symbol)
	})
	//
	rules := []lex.LexRule[rune]{
		lex.Rule(lex.Unit('('), tokLParen),
		lex.Rule(lex.Unit(')'), tokRParen),
	}
	//
	for _, s := range symbols {
		rules = append(rules, lex.Rule(lex.String(s.symbol), s.tag))
	}
	//
	rules = append(rules,
		lex.Rule(whitespace, tokWhitespace),
		lex.Rule(identifier, tokIdentifier),
		lex.Rule(lex.Eof[rune](), tokEOF),
	)
	//
	return rules
}

// Lex a given source file into a sequence of tokens, or report a syntax
// error at the first character which no rule accepts.  Whitespace tokens are
// removed from the result; the final token is always tokEOF.
func Lex(srcfile *source.File, syntax Syntax) ([]lex.Token, *source.SyntaxError) {
	var (
		lexer  = lex.NewLexer(srcfile.Contents(), lexRules(syntax)...)
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start := int(lexer.Index())
		return nil, srcfile.SyntaxError(source.NewSpan(start, start+1), "unknown token")
	}
	// Remove any whitespace
	filtered := tokens[:0]
	//
	for _, t := range tokens {
		if t.Kind != tokWhitespace {
			filtered = append(filtered, t)
		}
	}
	//
	return filtered, nil
}
