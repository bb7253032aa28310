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
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srsviegas/proplog/pkg/logic"
	"github.com/srsviegas/proplog/pkg/util/source"
)

// displaySettings groups everything a subcommand needs to read and render
// formulas: the accepted syntax and the display symbol table.
type displaySettings struct {
	symbols logic.SymbolTable
	syntax  logic.Syntax
}

// configureDisplay resolves the persistent --verbose, --unicode and
// --symbols flags into concrete settings.
func configureDisplay(cmd *cobra.Command) displaySettings {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	symbols := logic.ASCIISymbols
	if GetFlag(cmd, "unicode") {
		symbols = logic.UnicodeSymbols
	}
	//
	syntax := logic.DefaultSyntax()
	//
	if path := GetString(cmd, "symbols"); path != "" {
		var err error
		//
		symbols, syntax, err = loadSymbolsFile(path, symbols)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Debugf("loaded symbol configuration from %s", path)
	}
	//
	return displaySettings{symbols, syntax}
}

// readFormulaText assembles the formula text for the command: either the
// given arguments joined with spaces, or (with no arguments) the whole of
// standard input.
func readFormulaText(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	//
	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return strings.TrimSpace(string(bytes))
}

// parseFormula parses a formula under the given settings, reporting any
// syntax error and exiting on failure.
func parseFormula(text string, settings displaySettings) logic.Formula {
	f, err := logic.ParseWith(text, settings.syntax)
	//
	if err != nil {
		printSyntaxError(err)
		os.Exit(2)
	}
	//
	log.Debugf("parsed %q over %d atom(s)", text, len(logic.Atoms(f)))
	//
	return f
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%d:%d-%d %s\n", line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}
