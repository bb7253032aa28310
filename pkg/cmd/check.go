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

	"github.com/spf13/cobra"
	"github.com/srsviegas/proplog/pkg/logic"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] formula [formula]",
	Short: "decide semantic properties of one or two formulas.",
	Long: `Decide whether a given formula is a tautology, a contradiction,
	 satisfiable and falsifiable.  With two formulas, decide whether they are
	 logically equivalent.  All checks enumerate assignments exhaustively, so
	 cost grows as 2^n in the number of distinct atoms.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		settings := configureDisplay(cmd)
		// Equivalence requires both formulas on argv; the single-formula form
		// also accepts stdin.
		if len(args) == 2 {
			var (
				lhs = parseFormula(args[0], settings)
				rhs = parseFormula(args[1], settings)
			)
			//
			fmt.Printf("equivalent: %t\n", logic.IsEquivalent(lhs, rhs))
			//
			return
		}
		//
		formula := parseFormula(readFormulaText(args), settings)
		//
		fmt.Printf("tautology:     %t\n", logic.IsTautology(formula))
		fmt.Printf("contradiction: %t\n", logic.IsContradiction(formula))
		fmt.Printf("satisfiable:   %t\n", logic.IsSatisfiable(formula))
		fmt.Printf("falsifiable:   %t\n", logic.IsFalsifiable(formula))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
