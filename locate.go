/*
locate.go, part of restrain-pucker



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
	"fmt"
	"slices"
	"strings"

	chem "github.com/rmera/gochem"
)

// ResidueNotFoundError means no atom in the file belongs to the requested
// residue (tag, and instance if one was requested).
type ResidueNotFoundError struct {
	Tag   string
	ResID int
}

func (e *ResidueNotFoundError) Error() string {
	if e.ResID > 0 {
		return sf("no atoms belong to residue %s with residue number %d", e.Tag, e.ResID)
	}
	return sf("no atoms belong to residue %s", e.Tag)
}

// ResolutionError means a canonical ring role could not be pinned to exactly
// one atom of the target residue: either no atom name matches it, or more
// than one does (the Candidates).
type ResolutionError struct {
	Role       string
	Candidates []string
}

func (e *ResolutionError) Error() string {
	if len(e.Candidates) == 0 {
		return sf("ring atom %s: no atom of the residue matches it", e.Role)
	}
	return sf("ring atom %s: more than one atom matches it: %s", e.Role, strings.Join(e.Candidates, ", "))
}

// RingAtoms are the six atoms of one pyranose ring, in the role order of
// RingRoles (C1, O5, C5, C4, C3, C2), each resolved from exactly one atom
// record of the selected residue instance.
type RingAtoms struct {
	Atoms [6]*chem.Atom
	Tag   string
	ResID int
}

// ResolveRing filters the atom records to those of the residue tag (and
// residue number, if resid is positive) and resolves each canonical ring
// role to exactly one of them under the given naming convention. It never
// guesses: any missing or ambiguous role fails the whole resolution.
func ResolveRing(mol chem.Atomer, tag string, resid int, conv *Convention) (*RingAtoms, error) {
	sel := make([]*chem.Atom, 0, 12)
	resids := make([]int, 0, 2)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		if at.MolName != tag {
			continue
		}
		if resid > 0 && at.MolID != resid {
			continue
		}
		sel = append(sel, at)
		if !slices.Contains(resids, at.MolID) {
			resids = append(resids, at.MolID)
		}
	}
	if len(sel) == 0 {
		return nil, &ResidueNotFoundError{Tag: tag, ResID: resid}
	}
	if len(resids) > 1 {
		return nil, fmt.Errorf("residue %s appears %d times in the file (residue numbers %v); select one instance with -resid",
			tag, len(resids), resids)
	}
	ret := &RingAtoms{Tag: tag, ResID: resids[0]}
	for i, role := range RingRoles {
		var found []*chem.Atom
		for _, at := range sel {
			if conv.Matches(role, at.Name) {
				found = append(found, at)
			}
		}
		if len(found) != 1 {
			cand := make([]string, 0, len(found))
			for _, at := range found {
				cand = append(cand, sf("%s (atom %d, residue %d)", at.Name, at.ID, at.MolID))
			}
			return nil, &ResolutionError{Role: role, Candidates: cand}
		}
		ret.Atoms[i] = found[0]
	}
	return ret, nil
}
