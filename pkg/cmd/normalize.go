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

var cnfCmd = &cobra.Command{
	Use:   "cnf [flags] formula",
	Short: "convert a formula into conjunctive normal form.",
	Long: `Convert a given formula into a conjunction of disjunctions of
	 literals.  No simplification is applied unless --simplify is given; note
	 the result can be exponentially larger than the input.`,
	Run: func(cmd *cobra.Command, args []string) {
		runNormalize(cmd, args, logic.ToCNF)
	},
}

var dnfCmd = &cobra.Command{
	Use:   "dnf [flags] formula",
	Short: "convert a formula into disjunctive normal form.",
	Long: `Convert a given formula into a disjunction of conjunctions of
	 literals.  No simplification is applied unless --simplify is given; note
	 the result can be exponentially larger than the input.`,
	Run: func(cmd *cobra.Command, args []string) {
		runNormalize(cmd, args, logic.ToDNF)
	},
}

func runNormalize(cmd *cobra.Command, args []string, convert func(logic.Formula) logic.Formula) {
	settings := configureDisplay(cmd)
	formula := parseFormula(readFormulaText(args), settings)
	//
	converted := convert(formula)
	//
	if GetFlag(cmd, "simplify") {
		converted = logic.Simplify(converted)
	}
	//
	fmt.Println(logic.Format(converted, settings.symbols))
}

func init() {
	rootCmd.AddCommand(cnfCmd)
	rootCmd.AddCommand(dnfCmd)
	cnfCmd.Flags().Bool("simplify", false, "simplify the converted formula")
	dnfCmd.Flags().Bool("simplify", false, "simplify the converted formula")
}
