/*
restraint.go, part of restrain-pucker



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
	"strings"
)

// Conformation is one of the two chair conformations of a pyranose ring.
type Conformation int

const (
	Conf1C4 Conformation = iota
	Conf4C1
)

func (c Conformation) String() string {
	if c == Conf4C1 {
		return "4C1"
	}
	return "1C4"
}

// ConformationFromString reads a chair conformation from its usual notation.
func ConformationFromString(s string) (Conformation, error) {
	switch strings.ToUpper(s) {
	case "1C4":
		return Conf1C4, nil
	case "4C1":
		return Conf4C1, nil
	}
	return Conf1C4, fmt.Errorf("unknown conformation %q, only 1C4 and 4C1 exist", s)
}

const (
	dihresFuncType  = 1           //Gromacs function type for a dihedral restraint
	dihresTolerance = 2.5         //half-width around the target angle, degrees
	dihresFC        = "DIHRES_FC" //force constant left for the topology's define system
	dihresMagnitude = 60.0        //magnitude of every ring torsion in a chair, degrees
)

// Each restraint line takes four consecutive ring positions, walking the
// ring C1->O5->C5->C4->C3->C2 and wrapping around.
var ringPath = [6][4]int{
	{0, 1, 2, 3},
	{1, 2, 3, 4},
	{2, 3, 4, 5},
	{3, 4, 5, 0},
	{4, 5, 0, 1},
	{5, 0, 1, 2},
}

// Restraints formats the dihedral_restraints block that pins the ring to
// the given chair conformation, ready to be pasted into (or appended to)
// the itp the ring was resolved from. The torsion signs alternate around
// the ring, starting negative for 1C4; 4C1 is the mirror, so every sign
// is flipped.
func (R *RingAtoms) Restraints(conf Conformation) string {
	var b strings.Builder
	b.WriteString("#ifdef PUCKER\n")
	b.WriteString("[ dihedral_restraints ]\n")
	ang := -dihresMagnitude
	if conf == Conf4C1 {
		ang = dihresMagnitude
	}
	for _, p := range ringPath {
		fmt.Fprintf(&b, "%5s %5s %5s %5s %5d %8.1f %8.1f %15s \n",
			R.Atoms[p[0]].Name, R.Atoms[p[1]].Name, R.Atoms[p[2]].Name, R.Atoms[p[3]].Name,
			dihresFuncType, ang, dihresTolerance, dihresFC)
		ang = -ang
	}
	b.WriteString("#endif\n")
	return b.String()
}
