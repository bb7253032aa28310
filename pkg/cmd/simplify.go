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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srsviegas/proplog/pkg/logic"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] formula",
	Short: "simplify a formula.",
	Long: `Rewrite a given formula to a fixpoint of the equivalence-preserving
	 simplification rules (constant folding, double negation, idempotence and
	 complement laws).`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := configureDisplay(cmd)
		formula := parseFormula(readFormulaText(args), settings)
		//
		simplified := logic.Simplify(formula)
		//
		log.Debugf("simplified %d node(s) down to %d",
			len(logic.Subformulas(formula)), len(logic.Subformulas(simplified)))
		//
		fmt.Println(logic.Format(simplified, settings.symbols))
	},
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
}
