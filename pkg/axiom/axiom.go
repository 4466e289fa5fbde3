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
package axiom

import (
	"fmt"
	"slices"
	"strings"

	"github.com/consensys/go-fol/pkg/fol"
	log "github.com/sirupsen/logrus"
)

// Axiom associates a formula with a name and a short description.
type Axiom struct {
	// Name is a unique (lower case) identifier for this axiom.
	Name string
	// Description summarises the axiom in words.
	Description string
	// Formula is the axiom itself.
	Formula fol.Formula
}

func (p Axiom) String() string {
	return fmt.Sprintf("%s: %s", p.Name, p.Formula.String())
}

// registry holds all known axioms in presentation order.
var registry = []Axiom{
	{"extensionality", "sets with the same members are equal", Extensionality()},
	{"empty", "there is a set with no members", EmptySet()},
	{"pairing", "any two sets are members of some set", Pairing()},
	{"union", "the members of the members of a set form a set", Union()},
	{"powerset", "the subsets of a set are members of some set", PowerSet()},
	{"infinity", "some set contains the empty set and is closed under successor", Infinity()},
	{"foundation", "every non-empty set has a member disjoint from it", Foundation()},
}

// Names returns the names of all known axioms, in presentation order.
func Names() []string {
	names := make([]string, len(registry))
	//
	for i, ax := range registry {
		names[i] = ax.Name
	}
	//
	return names
}

// All returns every known axiom, in presentation order.
func All() []Axiom {
	return slices.Clone(registry)
}

// Lookup an axiom by name.  Names are matched case-insensitively.
func Lookup(name string) (Axiom, error) {
	for _, ax := range registry {
		if strings.EqualFold(ax.Name, name) {
			return ax, nil
		}
	}
	//
	return Axiom{}, fmt.Errorf("unknown axiom \"%s\" (expected one of %s)", name, strings.Join(Names(), ", "))
}

// LookupAll resolves each of the given names, or returns all axioms when no
// names are given.  Every unknown name is reported.
func LookupAll(names ...string) ([]Axiom, []error) {
	var (
		axioms []Axiom
		errs   []error
	)
	//
	if len(names) == 0 {
		log.Debug(fmt.Sprintf("selecting all %d axioms", len(registry)))
		return All(), nil
	}
	//
	for _, name := range names {
		if ax, err := Lookup(name); err != nil {
			errs = append(errs, err)
		} else {
			axioms = append(axioms, ax)
		}
	}
	//
	log.Debug(fmt.Sprintf("resolved %d of %d axiom name(s)", len(axioms), len(names)))
	//
	return axioms, errs
}
