// Copyright Consensys Software Inc.
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

	"github.com/consensys/go-fol/pkg/axiom"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// EXIT_UNKNOWN_AXIOM is the exit status when an unknown axiom is requested.
const EXIT_UNKNOWN_AXIOM = 2

var axiomsCmd = &cobra.Command{
	Use:   "axioms [flags] [name...]",
	Short: "print axioms of set theory.",
	Long: `Print one or more named axioms of Zermelo-Fraenkel set theory,
	or all of them when no names are given.  Use "fol list" to see
	which axioms are available.`,
	Run: func(cmd *cobra.Command, args []string) {
		if status := runAxioms(os.Stdout, cmd, args); status != 0 {
			os.Exit(status)
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list available axioms.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := printList(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Print the requested axioms to the given writer, returning the exit status.
func runAxioms(w io.Writer, cmd *cobra.Command, args []string) int {
	axioms, errs := axiom.LookupAll(args...)
	// Report any unknown axioms
	if len(errs) > 0 {
		for _, err := range errs {
			log.Error(err)
		}
		//
		return EXIT_UNKNOWN_AXIOM
	}
	//
	printer := NewAxiomPrinter().
		Ascii(GetFlag(cmd, "ascii")).
		Lisp(GetFlag(cmd, "lisp")).
		Colour(useColour(cmd, w)).
		Describe(GetFlag(cmd, "describe"))
	//
	log.Debug(fmt.Sprintf("printing %d axiom(s)", len(axioms)))
	//
	if err := printer.Print(w, axioms...); err != nil {
		log.Error(err)
		return 1
	}
	//
	return 0
}

// Print the name and description of every known axiom.
func printList(w io.Writer) error {
	for _, ax := range axiom.All() {
		if _, err := fmt.Fprintf(w, "%-16s %s\n", ax.Name, ax.Description); err != nil {
			return err
		}
	}
	//
	return nil
}

// Highlighting is used when explicitly requested, otherwise only when writing
// to a terminal.
func useColour(cmd *cobra.Command, w io.Writer) bool {
	if GetChanged(cmd, "colour") {
		return GetFlag(cmd, "colour")
	}
	//
	file, ok := w.(*os.File)
	isTerminal := ok && term.IsTerminal(int(file.Fd()))
	log.Debug(fmt.Sprintf("output is terminal: %t", isTerminal))
	//
	return isTerminal
}

func addAxiomsFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("ascii", false, "use ASCII rather than Unicode notation")
	cmd.Flags().Bool("lisp", false, "print axioms as S-Expressions")
	cmd.Flags().Bool("colour", false, "highlight logical symbols (default when writing to a terminal)")
	cmd.Flags().Bool("describe", false, "print a description above each axiom")
}

func init() {
	rootCmd.AddCommand(axiomsCmd)
	rootCmd.AddCommand(listCmd)
	addAxiomsFlags(axiomsCmd)
}
