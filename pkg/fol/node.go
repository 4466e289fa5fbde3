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
package fol

import (
	"fmt"
	"strings"

	"github.com/consensys/go-fol/pkg/util/sexp"
)

// Node captures any element of a formula tree.
type Node interface {
	fmt.Stringer
	// Lisp converts this node into an S-Expression.
	Lisp() sexp.SExp
	// render writes this node into the given builder using the given
	// notation.
	render(builder *strings.Builder, notation *Notation)
}

// Render a node using a specific notation.  Rendering is a pure function of
// the tree, hence rendering the same node twice yields identical text.
func Render(node Node, notation Notation) string {
	var builder strings.Builder
	//
	node.render(&builder, &notation)
	//
	return builder.String()
}

// Write the application of a named symbol to zero or more arguments, as in
// "f(x,y)".  A nullary application is written "f()".
func renderApplication[T Node](builder *strings.Builder, notation *Notation, name string, args []T) {
	builder.WriteString(name)
	builder.WriteString("(")
	//
	for i, arg := range args {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		arg.render(builder, notation)
	}
	//
	builder.WriteString(")")
}

func lispOfApplication[T Node](name string, args []T) sexp.SExp {
	elements := make([]sexp.SExp, len(args))
	//
	for i, arg := range args {
		elements[i] = arg.Lisp()
	}
	//
	return sexp.NewApplication(name, elements...)
}

func checkNonNil[T any](kind string, children ...*T) {
	for i, child := range children {
		if child == nil {
			panic(fmt.Sprintf("%s constructed with nil child (argument %d)", kind, i))
		}
	}
}

func checkFormulas(kind string, children ...Formula) {
	for i, child := range children {
		if child == nil || child.isNil() {
			panic(fmt.Sprintf("%s constructed with nil formula (argument %d)", kind, i))
		}
	}
}
