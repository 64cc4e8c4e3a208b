/*

Restrain-pucker generates dihedral restraints that pin the pyranose ring of a
monosaccharide residue in a Gromacs topology to a chosen chair conformation.

This program makes use of the goChem Computational Chemistry library.
If you use this program, we kindly ask you support it by citing the library as:

R. Mera-Adasme, G. Savasci and J. Pesonen, "goChem, a library for computational chemistry", http://www.gochem.org.


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
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rmera/scu"
)

func fatal(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "restrain-pucker: %s\n", err.Error())
		os.Exit(1)
	}
}

func main() {
	res := flag.String("res", "", "Residue tag of the target sugar (e.g. YuA in GLYCAM, AIDOA in CHARMM). Autodetected if empty")
	resid := flag.Int("resid", 0, "Residue number of the target instance. Needed only if several residues share the tag")
	conf := flag.String("conf", "1C4", "Chair conformation to restrain the ring to. Options: 1C4, 4C1")
	convname := flag.String("convention", "", "Force a naming convention by name (GLYCAM, CHARMM, or one loaded with -aliases). Inferred from the residue tag if empty")
	aliases := flag.String("aliases", "", "JSON file with additional naming conventions")
	check := flag.Bool("check", false, "Verify against the [ bonds ] section that the resolved atoms form a closed ring")
	outname := flag.String("o", "", "Write the restraint block to this file instead of standard output")
	define := flag.String("define", "", "Preprocessor symbols assumed defined while reading the file, separated by commas")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Restrain-pucker: Ring-puckering dihedral restraints for one sugar residue of a Gromacs topology.\n Usage:\n  %s [flags] topology.itp \n\nThe restraint block is printed so it can be pasted at the end of the itp file.\nIt only takes effect when the PUCKER symbol is defined, with the force\nconstant supplied by a DIHRES_FC define.\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	conformation, err := ConformationFromString(*conf)
	fatal(err)
	convs := BuiltinConventions()
	if *aliases != "" {
		extra, err := ReadConventions(*aliases)
		fatal(err)
		convs = append(convs, extra...)
	}
	var defines []string
	if *define != "" {
		defines = strings.Split(*define, ",")
	}
	inp, err := scu.NewMustReadFile(args[0])
	scu.QErr(err)
	itp, err := ParseItp(inp, defines...)
	inp.Close() //also on the parse-failure path
	fatal(err)
	var conv *Convention
	if *convname != "" {
		conv = convs.ByName(*convname)
		if conv == nil {
			fatal(fmt.Errorf("no naming convention named %q is registered", *convname))
		}
	}
	tag := *res
	if tag == "" {
		var detected *Convention
		tag, detected, err = DetectResidue(itp, convs)
		fatal(err)
		if conv == nil {
			conv = detected
		}
	}
	if conv == nil {
		conv = convs.ByResidue(tag)
		if conv == nil {
			fatal(fmt.Errorf("no naming convention registered for residue %q; use -convention or -aliases", tag))
		}
	}
	ring, err := ResolveRing(itp, tag, *resid, conv)
	fatal(err)
	if *check {
		fatal(CheckRing(itp, ring))
	}
	block := ring.Restraints(conformation)
	if *outname != "" {
		out, err := os.Create(*outname)
		scu.QErr(err)
		defer out.Close()
		_, err = out.WriteString(block)
		scu.QErr(err)
		return
	}
	fmt.Print(block)
}
