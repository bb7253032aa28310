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
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srsviegas/proplog/pkg/logic"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] formula",
	Short: "evaluate a formula under a (possibly partial) assignment.",
	Long: `Evaluate a given formula under the assignment built from the --bind
	 flags.  When every atom is bound the result is a boolean; otherwise the
	 residual formula over the unbound atoms is printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := configureDisplay(cmd)
		formula := parseFormula(readFormulaText(args), settings)
		interpretation := parseBindings(GetStringArray(cmd, "bind"))
		//
		log.Debugf("evaluating under %d binding(s)", len(interpretation))
		//
		result := logic.Eval(formula, interpretation)
		fmt.Println(logic.Format(result, settings.symbols))
	},
}

// parseBindings turns "P=true,Q=false" style flags into an interpretation.
// Multiple --bind flags and comma-separated pairs within one flag are both
// accepted.
func parseBindings(items []string) logic.Interpretation {
	interpretation := make(logic.Interpretation)
	//
	for _, item := range items {
		for _, pair := range strings.Split(item, ",") {
			name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
			if !ok {
				fmt.Printf("malformed binding %q\n", pair)
				os.Exit(2)
			}
			//
			val, err := strconv.ParseBool(value)
			if err != nil {
				fmt.Printf("malformed binding %q: %s\n", pair, err)
				os.Exit(2)
			}
			//
			if !logic.ValidAtomName(name) {
				fmt.Printf("malformed binding %q: invalid atom name\n", pair)
				os.Exit(2)
			}
			//
			interpretation[name] = val
		}
	}
	//
	return interpretation
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringArrayP("bind", "b", nil, "bind an atom, e.g. --bind P=true")
}
