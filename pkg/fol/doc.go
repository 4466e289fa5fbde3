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

// Package fol provides an immutable expression tree for well-formed formulas of
// first-order predicate logic with equality.  Trees are built bottom-up from
// already constructed children, so they are always acyclic and every node may
// be freely shared between parents (and goroutines).
//
// Every node renders itself in standard logical notation via String(), for
// example:
//
//	∀x[∀y[[∀z[[MemberOf(z,x) ↔ MemberOf(z,y)]] → [x = y]]]]
//
// Binary connectives are bracketed only when they appear as a Formula, hence
// trees should always be built by wrapping connectives with FromConnective
// (or through the helpers in package build).
package fol
