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
	"github.com/BurntSushi/toml"
	"github.com/srsviegas/proplog/pkg/logic"
)

// symbolsFile mirrors the layout of a --symbols TOML file.  Both sections
// are optional: [display] overrides individual display symbols, whilst
// [syntax] replaces the spellings the parser accepts for a connective.
//
//	[display]
//	not = "¬"
//	and = "∧"
//
//	[syntax]
//	implies = ["=>"]
type symbolsFile struct {
	Display displaySection `toml:"display"`
	Syntax  syntaxSection  `toml:"syntax"`
}

type displaySection struct {
	True    string `toml:"true"`
	False   string `toml:"false"`
	Not     string `toml:"not"`
	And     string `toml:"and"`
	Or      string `toml:"or"`
	Implies string `toml:"implies"`
	Iff     string `toml:"iff"`
	Xor     string `toml:"xor"`
}

type syntaxSection struct {
	Not     []string `toml:"not"`
	And     []string `toml:"and"`
	Or      []string `toml:"or"`
	Implies []string `toml:"implies"`
	Iff     []string `toml:"iff"`
	Xor     []string `toml:"xor"`
}

// loadSymbolsFile reads a --symbols file, layering its display overrides on
// top of a given base table and its syntax overrides on top of the default
// syntax.
func loadSymbolsFile(path string, base logic.SymbolTable) (logic.SymbolTable, logic.Syntax, error) {
	var (
		file   symbolsFile
		syntax = logic.DefaultSyntax()
	)
	//
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return base, syntax, err
	}
	//
	symbols := base.Merge(logic.SymbolTable{
		True:    file.Display.True,
		False:   file.Display.False,
		Not:     file.Display.Not,
		And:     file.Display.And,
		Or:      file.Display.Or,
		Implies: file.Display.Implies,
		Iff:     file.Display.Iff,
		Xor:     file.Display.Xor,
	})
	//
	if len(file.Syntax.Not) != 0 {
		syntax.Not = file.Syntax.Not
	}
	//
	if len(file.Syntax.And) != 0 {
		syntax.And = file.Syntax.And
	}
	//
	if len(file.Syntax.Or) != 0 {
		syntax.Or = file.Syntax.Or
	}
	//
	if len(file.Syntax.Implies) != 0 {
		syntax.Implies = file.Syntax.Implies
	}
	//
	if len(file.Syntax.Iff) != 0 {
		syntax.Iff = file.Syntax.Iff
	}
	//
	if len(file.Syntax.Xor) != 0 {
		syntax.Xor = file.Syntax.Xor
	}
	//
	return symbols, syntax, nil
}
