/*
itp.go, part of restrain-pucker



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
	"regexp"
	"slices"
	"strconv"
	"strings"

	chem "github.com/rmera/gochem"
)

var fi func(string) []string = strings.Fields
var sf func(string, ...any) string = fmt.Sprintf

// LineReader is the line-wise reader used throughout: Next returns each line
// in turn, including its newline, and the literal "EOF" once the source is
// exhausted. The file readers in the scu library implement it.
type LineReader interface {
	Next() string
}

// TopInMem is a topology kept in memory as a slice of lines, readable
// as a LineReader. Reading past the end rewinds it.
type TopInMem struct {
	t []string
	i int
}

func NewTopInMem(t []string) *TopInMem {
	return &TopInMem{t: t, i: 0}
}

// NewTopFromString splits a whole topology text into a TopInMem.
func NewTopFromString(s string) *TopInMem {
	lines := strings.SplitAfter(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return NewTopInMem(lines)
}

func (t *TopInMem) Next() string {
	if t.i >= len(t.t) {
		t.i = 0 //you can re-start reading it.
		return "EOF"
	}
	t.i++
	return t.t[t.i-1]
}

// ParseError reports a line of the topology that could not be read.
// Line is 1-based; a Line of 0 means the problem is the file as a whole.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line <= 0 {
		return sf("itp: %s", e.Reason)
	}
	return sf("itp: line %d: %s: %q", e.Line, e.Reason, strings.TrimRight(e.Text, "\n"))
}

// Returns a string without gromacs comments (sequences starting with ';'),
// trailing and leading spaces, tabs and newlines
func cleanString(s string) string {
	f := strings.Split(s, ";")[0]
	return strings.Trim(f, "\n\t ")

}

type topHeader struct {
	wany *regexp.Regexp
	spec map[string]*regexp.Regexp
}

func newTopHeader() *topHeader {
	T := new(topHeader)
	T.wany = regexp.MustCompile(`\[\p{Zs}*.*\p{Zs}*\]`)
	T.spec = map[string]*regexp.Regexp{
		"atoms": regexp.MustCompile(`\[\p{Zs}*atoms\p{Zs}*\]`),
		"bonds": regexp.MustCompile(`\[\p{Zs}*bonds\p{Zs}*\]`),
	}
	return T
}

// Returns true if the line is a Gromacs section header.
func (T *topHeader) Is(line string) bool {
	return T.wany.MatchString(line)
}

// Returns which of the supported headers the line is, or an empty
// string for headers this program doesn't consume.
func (T *topHeader) Which(line string) string {
	for k, v := range T.spec {
		if v.MatchString(line) {
			return k
		}
	}
	return ""
}

type cond struct {
	reading bool
}

func newCond() *cond {
	c := new(cond)
	c.reading = true
	return c
}

// a function to read conditional parts of gromacs topologies
// depending on the defined flags that should be in 'defines'
func (c *cond) read(line string, defines []string) bool {
	if strings.HasPrefix(line, "#ifdef") {
		f := fi(line)
		c.reading = len(f) > 1 && slices.Contains(defines, f[1])
		return false
	}
	if strings.HasPrefix(line, "#ifndef") {
		f := fi(line)
		c.reading = len(f) > 1 && !slices.Contains(defines, f[1])
		return false
	}
	if strings.HasPrefix(line, "#else") {
		c.reading = !c.reading
		return false
	}
	if strings.HasPrefix(line, "#endif") {
		c.reading = true
		return false
	}
	return c.reading
}

// Itp holds the parts of a Gromacs itp/top file this program consumes:
// the atom records and, for the optional ring-bond check, the pairs of
// 1-based atom IDs from the bonds section.
type Itp struct {
	Atoms []*chem.Atom
	Bonds [][2]int
}

// Atom returns the ith atom record, in file order. Panics if out of range,
// as the Atomer implementations in goChem do.
func (I *Itp) Atom(i int) *chem.Atom {
	if i >= len(I.Atoms) {
		panic("Itp: Requested Atom out of bounds")
	}
	return I.Atoms[i]
}

func (I *Itp) Len() int {
	return len(I.Atoms)
}

// ParseItp reads a Gromacs itp/top from r in a single pass, keeping the
// atoms and bonds sections. Comment and blank lines are skipped, and
// #ifdef/#ifndef/#else/#endif conditionals are honored: only lines visible
// under the given preprocessor symbols are read. #include statements are
// not followed; the atoms section of a molecule lives in one file.
func ParseItp(r LineReader, defines ...string) (*Itp, error) {
	ret := &Itp{Atoms: make([]*chem.Atom, 0, 30), Bonds: make([][2]int, 0, 30)}
	h := newTopHeader()
	read := newCond()
	current := ""
	sawAtoms := false
	lineno := 0
	for l := r.Next(); l != "EOF"; l = r.Next() {
		lineno++
		s := cleanString(l)
		if s == "" {
			continue
		}
		if !read.read(s, defines) {
			continue
		}
		if strings.HasPrefix(s, "#") { //#include and friends
			continue
		}
		if h.Is(s) {
			current = h.Which(s)
			if current == "atoms" {
				sawAtoms = true
			}
			continue
		}
		switch current {
		case "atoms":
			at, err := atomFromItp(s)
			if err != nil {
				return nil, &ParseError{Line: lineno, Text: l, Reason: err.Error()}
			}
			ret.Atoms = append(ret.Atoms, at)
		case "bonds":
			b, err := bondFromItp(s)
			if err != nil {
				return nil, &ParseError{Line: lineno, Text: l, Reason: err.Error()}
			}
			ret.Bonds = append(ret.Bonds, b)
		default:
			continue
		}
	}
	if !sawAtoms {
		return nil, &ParseError{Reason: "no [ atoms ] section in file"}
	}
	return ret, nil
}

// Reads one atoms-section record:
// id type resnr resname atom cgnr charge [mass ...]
func atomFromItp(s string) (*chem.Atom, error) {
	f := fi(s)
	if len(f) < 7 {
		return nil, fmt.Errorf("atoms record has %d columns, want at least 7", len(f))
	}
	at := new(chem.Atom)
	var err error
	at.ID, err = strconv.Atoi(f[0])
	if err != nil {
		return nil, fmt.Errorf("can't read atom ID: %w", err)
	}
	at.Symbol = f[1]
	at.MolID, err = strconv.Atoi(f[2])
	if err != nil {
		return nil, fmt.Errorf("can't read residue number: %w", err)
	}
	at.MolName = f[3]
	at.Name = f[4]
	at.Charge, err = strconv.ParseFloat(f[6], 64)
	if err != nil {
		return nil, fmt.Errorf("can't read charge: %w", err)
	}
	return at, nil
}

// Reads the two atom IDs of a bonds-section record. The function type and
// parameters, if present, are not needed here.
func bondFromItp(s string) ([2]int, error) {
	var ret [2]int
	f := fi(s)
	if len(f) < 2 {
		return ret, fmt.Errorf("bonds record has %d columns, want at least 2", len(f))
	}
	ids, err := parseints(f[:2]...)
	if err != nil {
		return ret, fmt.Errorf("can't read bond atoms: %w", err)
	}
	ret[0], ret[1] = ids[0], ids[1]
	return ret, nil
}

func parseints(s ...string) ([]int, error) {
	r := make([]int, 0, len(s))
	for _, v := range s {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		r = append(r, i)
	}
	return r, nil
}
