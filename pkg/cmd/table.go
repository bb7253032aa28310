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
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srsviegas/proplog/pkg/logic"
	"golang.org/x/term"
)

var tableCmd = &cobra.Command{
	Use:   "table [flags] formula",
	Short: "print the truth table of a formula.",
	Long: `Enumerate all assignments over the formula's atoms (in binary counting
	 order over the sorted atom list) and print one row per assignment.  With
	 --sat, only the satisfying rows are shown; with --falsify, only the
	 falsifying rows.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := configureDisplay(cmd)
		formula := parseFormula(readFormulaText(args), settings)
		//
		var (
			satOnly     = GetFlag(cmd, "sat")
			falsifyOnly = GetFlag(cmd, "falsify")
		)
		//
		if satOnly && falsifyOnly {
			fmt.Println("--sat and --falsify are mutually exclusive")
			os.Exit(2)
		}
		//
		table := logic.GetTruthTable(formula)
		//
		log.Debugf("%d atom(s), %d row(s)", len(table.Atoms()), len(table.Rows()))
		//
		printTruthTable(&table, logic.Format(formula, settings.symbols), settings, satOnly, falsifyOnly)
	},
}

func printTruthTable(table *logic.TruthTable, header string, settings displaySettings, satOnly, falsifyOnly bool) {
	var (
		atoms  = table.Atoms()
		widths = make([]int, len(atoms))
	)
	// Column widths are driven by the atom names; values are at most 5 wide
	// ("false").
	for i, atom := range atoms {
		widths[i] = max(len(atom), 5)
	}
	// Header
	var builder strings.Builder
	//
	for i, atom := range atoms {
		builder.WriteString(fmt.Sprintf("%-*s | ", widths[i], atom))
	}
	//
	builder.WriteString(header)
	headerLine := builder.String()
	// Flag truncation on narrow terminals, rather than wrapping rows.
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && len(headerLine) > width {
			log.Warnf("table is %d columns wide, terminal only %d", len(headerLine), width)
		}
	}
	//
	fmt.Println(headerLine)
	fmt.Println(strings.Repeat("-", len(headerLine)))
	//
	for _, row := range table.Rows() {
		if (satOnly && !row.Value()) || (falsifyOnly && row.Value()) {
			continue
		}
		//
		var line strings.Builder
		//
		for i, val := range row.Inputs() {
			line.WriteString(fmt.Sprintf("%-*t | ", widths[i], val))
		}
		//
		line.WriteString(fmt.Sprintf("%t", row.Value()))
		fmt.Println(line.String())
	}
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().Bool("sat", false, "only print satisfying rows")
	tableCmd.Flags().Bool("falsify", false, "only print falsifying rows")
}
