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
	"github.com/srsviegas/proplog/pkg/util/source"
	"github.com/srsviegas/proplog/pkg/util/source/lex"
)

// Parse parses a formula written in the default concrete syntax.  The
// grammar is the usual precedence-climbing one: negation binds tightest,
// then conjunction, then disjunction, then implication (right-associative),
// then biconditional and exclusive disjunction (left-associative), with
// parentheses overriding precedence.  Parsing is all-or-nothing: on any
// malformed input a syntax error carrying the offending position is returned
// and no formula is produced.
func Parse(text string) (Formula, *source.SyntaxError) {
	return ParseWith(text, DefaultSyntax())
}

// ParseWith parses a formula written with a custom set of connective
// symbols.
func ParseWith(text string, syntax Syntax) (Formula, *source.SyntaxError) {
	return ParseFile(source.NewSourceFile("formula", []byte(text)), syntax)
}

// ParseFile parses the contents of a given source file into a formula.
func ParseFile(srcfile *source.File, syntax Syntax) (Formula, *source.SyntaxError) {
	tokens, err := Lex(srcfile, syntax)
	//
	if err != nil {
		return nil, err
	}
	//
	p := &parser{srcfile, tokens, 0}
	//
	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	// Ensure the entire input was consumed.
	if p.lookahead().Kind != tokEOF {
		return nil, p.syntaxError(p.lookahead(), "unexpected trailing input")
	}
	//
	return f, nil
}

// parser walks a token stream produced by Lex, building the formula tree.
type parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

func (p *parser) parseFormula() (Formula, *source.SyntaxError) {
	return p.parseEquiv()
}

// parseEquiv handles the lowest tier: biconditional and exclusive
// disjunction, both left-associative.
func (p *parser) parseEquiv() (Formula, *source.SyntaxError) {
	f, err := p.parseImplies()
	//
	if err != nil {
		return nil, err
	}
	//
	for {
		var kind Connective
		//
		switch p.lookahead().Kind {
		case tokIff:
			kind = IFF
		case tokXor:
			kind = XOR
		default:
			return f, nil
		}
		//
		p.index++
		//
		g, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		//
		f = Binary{kind, f, g}
	}
}

// parseImplies handles implication, which is right-associative.
func (p *parser) parseImplies() (Formula, *source.SyntaxError) {
	f, err := p.parseOr()
	//
	if err != nil {
		return nil, err
	}
	//
	if p.match(tokImplies) {
		g, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		//
		return Implication(f, g), nil
	}
	//
	return f, nil
}

func (p *parser) parseOr() (Formula, *source.SyntaxError) {
	f, err := p.parseAnd()
	//
	if err != nil {
		return nil, err
	}
	//
	for p.match(tokOr) {
		g, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		//
		f = Disjunction(f, g)
	}
	//
	return f, nil
}

func (p *parser) parseAnd() (Formula, *source.SyntaxError) {
	f, err := p.parseUnary()
	//
	if err != nil {
		return nil, err
	}
	//
	for p.match(tokAnd) {
		g, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		//
		f = Conjunction(f, g)
	}
	//
	return f, nil
}

func (p *parser) parseUnary() (Formula, *source.SyntaxError) {
	if p.match(tokNot) {
		f, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		//
		return Negation(f), nil
	}
	//
	return p.parseTerm()
}

func (p *parser) parseTerm() (Formula, *source.SyntaxError) {
	lookahead := p.lookahead()
	//
	switch lookahead.Kind {
	case tokLParen:
		p.index++
		//
		f, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		//
		if !p.match(tokRParen) {
			return nil, p.syntaxError(p.lookahead(), "expected closing parenthesis")
		}
		//
		return f, nil
	case tokIdentifier:
		p.index++
		//
		switch name := p.string(lookahead); name {
		case "true":
			return True, nil
		case "false":
			return False, nil
		default:
			atom, err := NewAtom(name)
			if err != nil {
				return nil, p.syntaxError(lookahead, err.Error())
			}
			//
			return atom, nil
		}
	case tokEOF:
		return nil, p.syntaxError(lookahead, "expected expression, found end of input")
	default:
		return nil, p.syntaxError(lookahead, "unexpected token")
	}
}

// Get the text representing the given token as a string.
func (p *parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// lookahead returns the next token.  This must exist because tokEOF is
// always appended at the end of the token stream.
func (p *parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// match attempts to consume a token of the given kind.
func (p *parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *parser) syntaxError(token lex.Token, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(token.Span, msg)
}
