package pdb

import (
	"fmt"
	"strings"
	"testing"
)

// rec formats one ATOM/HETATM record with the fixed-column layout the
// reader expects.
func rec(kind string, serial int, name string, alt byte, resName string,
	chain byte, seq int, icode byte, x, y, z float64, elem string) string {

	line := fmt.Sprintf("%-6s%5d %-4s%c%3s %c%4d%c   %8.3f%8.3f%8.3f",
		kind, serial, name, alt, resName, chain, seq, icode, x, y, z)
	return fmt.Sprintf("%-76s%2s\n", line, elem)
}

// sample is a tiny fragment with an altLoc 'B' atom, an old-style
// asterisk sugar name, a HETATM modified nucleotide, and a second model
// that must be ignored.
func sample() string {
	var b strings.Builder
	b.WriteString("HEADER    RIBONUCLEIC ACID\n")
	b.WriteString(rec("ATOM", 1, "P", ' ', "G", 'A', 1, ' ', 50.626, 49.730, 50.573, "P"))
	b.WriteString(rec("ATOM", 2, "O5'", ' ', "G", 'A', 1, ' ', 50.161, 49.136, 49.155, "O"))
	b.WriteString(rec("ATOM", 3, "N9", 'A', "G", 'A', 1, ' ', 48.000, 47.000, 46.000, "N"))
	b.WriteString(rec("ATOM", 4, "N9", 'B', "G", 'A', 1, ' ', 48.100, 47.100, 46.100, "N"))
	b.WriteString(rec("ATOM", 5, "C2*", ' ', "G", 'A', 1, ' ', 47.000, 46.000, 45.000, "C"))
	b.WriteString(rec("ATOM", 6, "N1", ' ', "C", 'A', 2, ' ', 44.000, 43.000, 42.000, "N"))
	b.WriteString(rec("HETATM", 7, "N1", ' ', "PSU", 'A', 3, ' ', 40.000, 41.000, 42.000, "N"))
	b.WriteString("ENDMDL\n")
	b.WriteString(rec("ATOM", 8, "N1", ' ', "C", 'A', 2, ' ', 10.000, 10.000, 10.000, "N"))
	return b.String()
}

func TestReadFrom(t *testing.T) {
	s, err := ReadFrom(strings.NewReader(sample()), "sample")
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Residues) != 3 {
		t.Fatalf("expected 3 residues, got %d", len(s.Residues))
	}
	if len(s.Atoms) != 6 {
		t.Fatalf("expected 6 atoms (altLoc B dropped, ENDMDL honored), "+
			"got %d", len(s.Atoms))
	}

	// Legacy indices are dense, 1-based and assigned in parse order.
	for i, r := range s.Residues {
		if r.Index != i+1 {
			t.Fatalf("residue %s has index %d, expected %d", r, r.Index, i+1)
		}
	}
	for i, a := range s.Atoms {
		if a.Serial != i+1 {
			t.Fatalf("atom %s has serial %d, expected %d", a, a.Serial, i+1)
		}
	}

	g := s.Residues[0]
	if g.BaseLetter() != 'G' {
		t.Fatalf("G residue has base letter %c", g.BaseLetter())
	}
	if g.Atom("C2'") == nil {
		t.Fatal("old-style C2* name was not normalized to C2'")
	}
	if n9 := g.Atom("N9"); n9 == nil || n9.Coords[0] != 48.000 {
		t.Fatal("altLoc A atom should win over altLoc B")
	}
	if g.GlycosidicN() == nil || g.GlycosidicN().Name != "N9" {
		t.Fatal("purine glycosidic nitrogen should be N9")
	}

	c := s.Residues[1]
	if c.GlycosidicN() == nil || c.GlycosidicN().Name != "N1" {
		t.Fatal("pyrimidine glycosidic nitrogen should be N1")
	}

	psu := s.Residues[2]
	if psu.BaseLetter() != 'U' {
		t.Fatalf("pseudouridine should map to U, got %c", psu.BaseLetter())
	}

	if s.Chain('A') == nil || len(s.Chain('A').Residues) != 3 {
		t.Fatal("chain A should own all three residues")
	}
}

func TestTwoLetterElement(t *testing.T) {
	in := rec("HETATM", 1, "ZN", ' ', "ZN", 'A', 9, ' ', 1.0, 2.0, 3.0, "ZN")
	s, err := ReadFrom(strings.NewReader(in), "zinc")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Atoms) != 1 {
		t.Fatalf("expected 1 atom, got %d", len(s.Atoms))
	}
	if e := s.Atoms[0].Element; e != "ZN" {
		t.Fatalf("zinc element parsed as %q", e)
	}
}

func TestReadFromRejectsShortAtomRecord(t *testing.T) {
	_, err := ReadFrom(strings.NewReader("ATOM      1  N1    C A   2\n"), "bad")
	if err == nil {
		t.Fatal("truncated ATOM record must be a hard error")
	}
}

func TestBaseLetterUnknown(t *testing.T) {
	s := NewStructure("synthetic")
	r := s.AddResidue('A', "XYZ", 1, ' ')
	if r.BaseLetter() != 0 {
		t.Fatal("unknown residue names must map to 0")
	}
}
