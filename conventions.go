/*
conventions.go, part of restrain-pucker



LICENSE

Copyright (c) 2025 mriopedre


This program, including its documentation,
is free software; you can redistribute it and/or modify
it under the terms of the GNU General Public License version 2.0 as
published by the Free Software Foundation.

This program and its documentation is distributed in the hope that
it will be useful, but WITHOUT ANY WARRANTY; without even the
implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR
PURPOSE.  See the GNU General Public License for more details.

You should have received a copy of the GNU General
Public License along with this program.  If not, see
<http://www.gnu.org/licenses/>.

*/

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	chem "github.com/rmera/gochem"
)

// RingRoles are the canonical labels of the pyranose ring positions, in the
// traversal order used for the restraint lines.
var RingRoles = [6]string{"C1", "O5", "C5", "C4", "C3", "C2"}

// Convention maps the canonical ring labels to the atom-name tokens a force
// field actually writes in its topologies, and lists the residue tags under
// which it names the target sugar. A role absent from Aliases is taken to
// keep its canonical token.
type Convention struct {
	Name     string              `json:"name"`
	Residues []string            `json:"residues"`
	Aliases  map[string][]string `json:"aliases"`
}

// Tokens returns the atom-name tokens accepted for a canonical ring role.
func (C *Convention) Tokens(role string) []string {
	if t, ok := C.Aliases[role]; ok {
		return t
	}
	return []string{role}
}

// Matches tells whether the atom name token is one of the accepted
// spellings of the canonical role under this convention.
func (C *Convention) Matches(role, name string) bool {
	return slices.Contains(C.Tokens(role), name)
}

type Conventions []*Convention

// ByName returns the convention with the given name, case-insensitively,
// or nil.
func (Cs Conventions) ByName(name string) *Convention {
	for _, c := range Cs {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// ByResidue returns the convention that names the sugar with the given
// residue tag, or nil.
func (Cs Conventions) ByResidue(tag string) *Convention {
	for _, c := range Cs {
		if slices.Contains(c.Residues, tag) {
			return c
		}
	}
	return nil
}

// Tags returns every residue tag known to the registered conventions.
func (Cs Conventions) Tags() []string {
	ret := make([]string, 0, len(Cs))
	for _, c := range Cs {
		ret = append(ret, c.Residues...)
	}
	return ret
}

// BuiltinConventions returns the naming conventions shipped with the
// program. IdoA is denoted YuA in GLYCAM and AIDOA in CHARMM; both spell
// the ring atoms with the canonical tokens.
func BuiltinConventions() Conventions {
	return Conventions{
		{Name: "GLYCAM", Residues: []string{"YuA"}},
		{Name: "CHARMM", Residues: []string{"AIDOA"}},
	}
}

// ReadConventions loads additional naming conventions from a JSON file
// holding a list of Convention objects, so new force fields can be used
// without touching the program.
func ReadConventions(filename string) (Conventions, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("conventions: %w", err)
	}
	defer f.Close()
	var ret Conventions
	if err := json.NewDecoder(f).Decode(&ret); err != nil {
		return nil, fmt.Errorf("conventions: can't read %s: %w", filename, err)
	}
	for _, c := range ret {
		if c.Name == "" || len(c.Residues) == 0 {
			return nil, fmt.Errorf("conventions: every entry in %s needs a name and at least one residue tag", filename)
		}
	}
	return ret, nil
}

// DetectResidue scans the atom records for the first residue tag known to a
// registered convention, and returns the tag with its convention.
func DetectResidue(mol chem.Atomer, convs Conventions) (string, *Convention, error) {
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if c := convs.ByResidue(at.MolName); c != nil {
			return at.MolName, c, nil
		}
	}
	return "", nil, fmt.Errorf("no residue in the file matches a known tag (%s); use -res with -convention or -aliases",
		strings.Join(convs.Tags(), ", "))
}
