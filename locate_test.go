/*
locate_test.go, part of restrain-pucker



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
	"errors"
	"strings"
	"testing"
)

func TestResolveRingGlycam(Te *testing.T) {
	itp := readItp(Te, "test/glycam.itp")
	conv := BuiltinConventions().ByName("GLYCAM")
	ring, err := ResolveRing(itp, "YuA", 0, conv)
	if err != nil {
		Te.Fatal(err)
	}
	wantIDs := [6]int{1, 17, 15, 11, 7, 3}
	for i, role := range RingRoles {
		at := ring.Atoms[i]
		if at.Name != role {
			Te.Errorf("role %s resolved to atom named %s", role, at.Name)
		}
		if at.ID != wantIDs[i] {
			Te.Errorf("role %s resolved to atom %d, want %d", role, at.ID, wantIDs[i])
		}
	}
	if ring.ResID != 1 || ring.Tag != "YuA" {
		Te.Errorf("resolved residue %s %d, want YuA 1", ring.Tag, ring.ResID)
	}
}

func TestResolveRingCharmm(Te *testing.T) {
	itp := readItp(Te, "test/charmm.itp")
	tag, conv, err := DetectResidue(itp, BuiltinConventions())
	if err != nil {
		Te.Fatal(err)
	}
	if tag != "AIDOA" || conv.Name != "CHARMM" {
		Te.Fatalf("detected %s under %s, want AIDOA under CHARMM", tag, conv.Name)
	}
	ring, err := ResolveRing(itp, tag, 0, conv)
	if err != nil {
		Te.Fatal(err)
	}
	wantIDs := [6]int{8, 24, 22, 18, 14, 10}
	for i, role := range RingRoles {
		if ring.Atoms[i].ID != wantIDs[i] {
			Te.Errorf("role %s resolved to atom %d, want %d", role, ring.Atoms[i].ID, wantIDs[i])
		}
	}
	//the GlcNAc ring atoms carry the same names, so the residue filter is
	//what keeps them out.
	if ring.ResID != 2 {
		Te.Errorf("resolved residue number %d, want 2", ring.ResID)
	}
}

func TestResidueNotFound(Te *testing.T) {
	itp := readItp(Te, "test/glycam.itp")
	conv := BuiltinConventions().ByName("GLYCAM")
	_, err := ResolveRing(itp, "BGC", 0, conv)
	var nferr *ResidueNotFoundError
	if !errors.As(err, &nferr) {
		Te.Fatalf("got %v, want a ResidueNotFoundError", err)
	}
	if nferr.Tag != "BGC" {
		Te.Errorf("error names residue %s, want BGC", nferr.Tag)
	}
}

func TestMissingO5(Te *testing.T) {
	top := NewTopFromString("[ atoms ]\n" +
		"  1  Cg  1  YuA  C1  1  0.10  12.011\n" +
		"  2  Cg  1  YuA  C2  2  0.10  12.011\n" +
		"  3  Cg  1  YuA  C3  3  0.10  12.011\n" +
		"  4  Cg  1  YuA  C4  4  0.10  12.011\n" +
		"  5  Cg  1  YuA  C5  5  0.10  12.011\n")
	itp, err := ParseItp(top)
	if err != nil {
		Te.Fatal(err)
	}
	conv := BuiltinConventions().ByName("GLYCAM")
	_, err = ResolveRing(itp, "YuA", 0, conv)
	var rerr *ResolutionError
	if !errors.As(err, &rerr) {
		Te.Fatalf("got %v, want a ResolutionError", err)
	}
	if rerr.Role != "O5" {
		Te.Errorf("error names role %s, want O5", rerr.Role)
	}
	if len(rerr.Candidates) != 0 {
		Te.Errorf("missing atom should have no candidates, got %v", rerr.Candidates)
	}
}

func TestAmbiguousC1(Te *testing.T) {
	top := NewTopFromString("[ atoms ]\n" +
		"  1  Cg  1  YuA  C1  1  0.10  12.011\n" +
		"  2  Cg  1  YuA  C1  2  0.10  12.011\n" +
		"  3  Cg  1  YuA  C2  3  0.10  12.011\n" +
		"  4  Cg  1  YuA  C3  4  0.10  12.011\n" +
		"  5  Cg  1  YuA  C4  5  0.10  12.011\n" +
		"  6  Cg  1  YuA  C5  6  0.10  12.011\n" +
		"  7  Os  1  YuA  O5  7  0.10  15.999\n")
	itp, err := ParseItp(top)
	if err != nil {
		Te.Fatal(err)
	}
	conv := BuiltinConventions().ByName("GLYCAM")
	_, err = ResolveRing(itp, "YuA", 0, conv)
	var rerr *ResolutionError
	if !errors.As(err, &rerr) {
		Te.Fatalf("got %v, want a ResolutionError", err)
	}
	if rerr.Role != "C1" {
		Te.Errorf("error names role %s, want C1", rerr.Role)
	}
	if len(rerr.Candidates) != 2 {
		Te.Errorf("got candidates %v, want the two conflicting atoms", rerr.Candidates)
	}
}

func TestDimerInstances(Te *testing.T) {
	itp := readItp(Te, "test/dimer.itp")
	conv := BuiltinConventions().ByName("GLYCAM")
	_, err := ResolveRing(itp, "YuA", 0, conv)
	if err == nil {
		Te.Fatal("two instances without -resid should not resolve")
	}
	if !strings.Contains(err.Error(), "-resid") {
		Te.Errorf("error should point at -resid, got: %v", err)
	}
	ring, err := ResolveRing(itp, "YuA", 2, conv)
	if err != nil {
		Te.Fatal(err)
	}
	if ring.ResID != 2 || ring.Atoms[0].ID != 7 {
		Te.Errorf("instance 2 resolved to residue %d, C1 atom %d", ring.ResID, ring.Atoms[0].ID)
	}
}

func TestReadConventions(Te *testing.T) {
	extra, err := ReadConventions("test/sulfo.json")
	if err != nil {
		Te.Fatal(err)
	}
	convs := append(BuiltinConventions(), extra...)
	conv := convs.ByName("SULFO")
	if conv == nil {
		Te.Fatal("SULFO convention not loaded")
	}
	if !conv.Matches("O5", "O5R") || conv.Matches("O5", "O4") {
		Te.Error("loaded alias table not honored")
	}
	top := NewTopFromString("[ atoms ]\n" +
		"  1  Cg  1  IDOA2S  C1R  1  0.10  12.011\n" +
		"  2  Cg  1  IDOA2S  C2   2  0.10  12.011\n" +
		"  3  Cg  1  IDOA2S  C3   3  0.10  12.011\n" +
		"  4  Cg  1  IDOA2S  C4   4  0.10  12.011\n" +
		"  5  Cg  1  IDOA2S  C5   5  0.10  12.011\n" +
		"  6  Os  1  IDOA2S  O5R  6  0.10  15.999\n")
	itp, err := ParseItp(top)
	if err != nil {
		Te.Fatal(err)
	}
	tag, detected, err := DetectResidue(itp, convs)
	if err != nil {
		Te.Fatal(err)
	}
	if tag != "IDOA2S" || detected.Name != "SULFO" {
		Te.Fatalf("detected %s under %s", tag, detected.Name)
	}
	ring, err := ResolveRing(itp, tag, 0, detected)
	if err != nil {
		Te.Fatal(err)
	}
	if ring.Atoms[0].Name != "C1R" || ring.Atoms[1].Name != "O5R" {
		Te.Errorf("aliased roles resolved to %s and %s", ring.Atoms[0].Name, ring.Atoms[1].Name)
	}
}
