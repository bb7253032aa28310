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
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/srsviegas/proplog/pkg/logic"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] formula",
	Short: "parse a formula and echo it back.",
	Long: `Parse a given formula and print it back in canonical form.  This is
	 useful for checking how an expression was bracketed, or for translating
	 between symbol tables.  With --tree, an indented parse tree is shown
	 instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := configureDisplay(cmd)
		formula := parseFormula(readFormulaText(args), settings)
		//
		if GetFlag(cmd, "tree") {
			printParseTree(formula, settings.symbols, 0)
		} else {
			fmt.Println(logic.Format(formula, settings.symbols))
		}
	},
}

// printParseTree renders one node per line, indented by depth.  Interior
// nodes are labelled by their connective symbol, leaves by their name or
// constant value.
func printParseTree(f logic.Formula, symbols logic.SymbolTable, depth int) {
	indent := strings.Repeat("  ", depth)
	//
	switch t := f.(type) {
	case logic.Not:
		fmt.Printf("%s%s\n", indent, symbols.Not)
		printParseTree(t.Operand, symbols, depth+1)
	case logic.Binary:
		fmt.Printf("%s%s\n", indent, symbols.Symbol(t.Kind))
		printParseTree(t.Lhs, symbols, depth+1)
		printParseTree(t.Rhs, symbols, depth+1)
	default:
		fmt.Printf("%s%s\n", indent, logic.Format(f, symbols))
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("tree", false, "print the parse tree rather than the formula")
}
