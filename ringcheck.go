/*
ringcheck.go, part of restrain-pucker



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

	"gonum.org/v1/gonum/graph/simple"
)

// CheckRing verifies against the bonds section that the six resolved atoms
// really are bonded in ring order, C1-O5-C5-C4-C3-C2 and back to C1. A name
// can resolve uniquely and still belong to the wrong atom (say, a renamed
// exocyclic carbon); the bond graph catches that.
func CheckRing(itp *Itp, ring *RingAtoms) error {
	if len(itp.Bonds) == 0 {
		return fmt.Errorf("ring check: the file has no [ bonds ] section to check against")
	}
	g := simple.NewUndirectedGraph()
	for _, b := range itp.Bonds {
		if b[0] == b[1] {
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(b[0]), simple.Node(b[1])))
	}
	for i := range ring.Atoms {
		a1 := ring.Atoms[i]
		a2 := ring.Atoms[(i+1)%len(ring.Atoms)]
		if !g.HasEdgeBetween(int64(a1.ID), int64(a2.ID)) {
			return fmt.Errorf("ring check: no bond between %s (atom %d) and %s (atom %d); the resolved ring is not closed",
				RingRoles[i], a1.ID, RingRoles[(i+1)%len(ring.Atoms)], a2.ID)
		}
	}
	return nil
}
