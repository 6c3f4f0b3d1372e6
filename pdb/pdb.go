package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/jyesselm/find-pair-sub012/geom"
)

// BaseThreeToOne maps residue names of recognized nucleotides to their
// one-letter base. It covers the standard ribo and deoxy forms plus the
// modified nucleotides whose parent base is unambiguous. Residue names
// absent from this map are not rejected outright; the frame calculator
// decides whether they are nucleotides by fitting them against idealized
// ring geometry.
var BaseThreeToOne = map[string]byte{
	"A": 'A', "C": 'C', "G": 'G', "U": 'U', "T": 'T', "I": 'I',
	"DA": 'A', "DC": 'C', "DG": 'G', "DT": 'T', "DU": 'U', "DI": 'I',
	"ADE": 'A', "CYT": 'C', "GUA": 'G', "THY": 'T', "URA": 'U',
	"PSU": 'U', "H2U": 'U', "5MU": 'T', "4SU": 'U', "OMU": 'U',
	"1MA": 'A', "MA6": 'A', "2MA": 'A',
	"5MC": 'C', "OMC": 'C',
	"1MG": 'G', "2MG": 'G', "M2G": 'G', "7MG": 'G', "OMG": 'G', "YG": 'G',
}

// Purines is the set of one-letter bases whose ring system is the
// nine-atom purine ring.
var Purines = map[byte]bool{'A': true, 'G': true, 'I': true}

// An Atom is one ATOM or HETATM record. Serial is the dense 1-based
// index assigned in parse order; it is the atom's stable identity for
// all downstream ordering and is never re-derived from slice position.
type Atom struct {
	Name   string
	Coords geom.Vec3

	// Element is the full symbol ("N", "O", "ZN"), so two-letter
	// metals never collide with the organic elements.
	Element string

	Residue *Residue
	Serial  int
}

func (a *Atom) String() string {
	return fmt.Sprintf("%s.%s", a.Residue, a.Name)
}

// A Residue owns an ordered list of atoms. Index is the dense 1-based
// residue index assigned in parse order. Frame is set by the frame
// calculator once the residue has been successfully fit to idealized
// base geometry; it stays nil for everything else, which excludes the
// residue from pairing.
type Residue struct {
	Name   string
	Chain  byte
	SeqNum int
	ICode  byte
	Atoms  []*Atom
	Index  int
	Frame  *geom.Frame
}

func (r *Residue) String() string {
	if r.ICode == 0 || r.ICode == ' ' {
		return fmt.Sprintf("%c:%s%d", r.Chain, r.Name, r.SeqNum)
	}
	return fmt.Sprintf("%c:%s%d%c", r.Chain, r.Name, r.SeqNum, r.ICode)
}

// BaseLetter returns the residue's one-letter base, or 0 when the
// residue name is not a recognized nucleotide.
func (r *Residue) BaseLetter() byte {
	return BaseThreeToOne[r.Name]
}

// Atom returns the named atom, or nil. Residues are small, so a linear
// scan beats carrying a map per residue.
func (r *Residue) Atom(name string) *Atom {
	for _, a := range r.Atoms {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// GlycosidicN returns the ring nitrogen that attaches the base to the
// sugar: N9 for purines (and for unrecognized residues that have one),
// N1 otherwise. Residues lacking both return nil.
func (r *Residue) GlycosidicN() *Atom {
	b := r.BaseLetter()
	if Purines[b] || b == 0 {
		if a := r.Atom("N9"); a != nil {
			return a
		}
	}
	return r.Atom("N1")
}

// A Chain groups the residues sharing one chain identifier, in parse
// order.
type Chain struct {
	Ident    byte
	Residues []*Residue
}

// A Structure is one fully parsed model: chains in order of first
// appearance, plus flat residue and atom lists carrying the dense legacy
// indices. Once parsed it is immutable apart from frame assignment on
// residues.
type Structure struct {
	Path     string
	Chains   []*Chain
	Residues []*Residue
	Atoms    []*Atom

	chains map[byte]*Chain
}

// NewStructure returns an empty structure ready to have residues added.
// The reader builds structures through this; tests build synthetic ones
// through the same path.
func NewStructure(path string) *Structure {
	return &Structure{
		Path:   path,
		chains: make(map[byte]*Chain),
	}
}

// Chain returns the chain with the given identifier, or nil.
func (s *Structure) Chain(ident byte) *Chain {
	return s.chains[ident]
}

func (s *Structure) getOrMakeChain(ident byte) *Chain {
	if c, ok := s.chains[ident]; ok {
		return c
	}
	c := &Chain{Ident: ident}
	s.chains[ident] = c
	s.Chains = append(s.Chains, c)
	return c
}

// AddResidue appends a residue to the named chain and assigns its legacy
// index.
func (s *Structure) AddResidue(chain byte, name string, seqNum int, icode byte) *Residue {
	c := s.getOrMakeChain(chain)
	r := &Residue{
		Name:   name,
		Chain:  chain,
		SeqNum: seqNum,
		ICode:  icode,
		Index:  len(s.Residues) + 1,
	}
	c.Residues = append(c.Residues, r)
	s.Residues = append(s.Residues, r)
	return r
}

// AddAtom appends an atom to a residue and assigns its legacy serial.
func (s *Structure) AddAtom(r *Residue, name string, element string, coords geom.Vec3) *Atom {
	a := &Atom{
		Name:    name,
		Coords:  coords,
		Element: element,
		Residue: r,
		Serial:  len(s.Atoms) + 1,
	}
	r.Atoms = append(r.Atoms, a)
	s.Atoms = append(s.Atoms, a)
	return a
}

// Read parses a PDB file into a Structure. If the file name ends with
// ".gz", gzip decompression is used. Only ATOM and HETATM records are
// consumed: modified nucleotides arrive as HETATM records, so both are
// kept and the frame calculator sorts out which residues are actually
// nucleotides. Parsing stops at ENDMDL so that multi-model NMR entries
// contribute a single model.
func Read(fileName string) (*Structure, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	if path.Ext(fileName) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	}
	return ReadFrom(reader, fileName)
}

// ReadFrom parses PDB records from an arbitrary reader. The name is used
// only for error messages and the Structure's Path field.
func ReadFrom(reader io.Reader, name string) (*Structure, error) {
	s := NewStructure(name)

	var cur *Residue
	lineNum := 0
	breader := bufio.NewReaderSize(reader, 1000)
	for {
		// We ignore 'isPrefix' here, since we never care about lines
		// longer than 1000 characters, which is the size of our buffer.
		line, _, err := breader.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		lineNum++

		// The record name is always in the first six columns.
		rec := strings.TrimSpace(str(line, 0, 6))
		if rec == "ENDMDL" || rec == "END" {
			break
		}
		if rec != "ATOM" && rec != "HETATM" {
			continue
		}
		if len(line) < 54 {
			return nil, fmt.Errorf("%s:%d: %s record is %d columns long; "+
				"coordinates need at least 54", name, lineNum, rec, len(line))
		}

		// Keep only the primary alternate location.
		if alt := line[16]; alt != ' ' && alt != 'A' {
			continue
		}

		atomName := strings.TrimSpace(str(line, 12, 16))
		// Old-style files write sugar primes as asterisks (O2* for O2').
		atomName = strings.ReplaceAll(atomName, "*", "'")
		resName := strings.TrimSpace(str(line, 17, 20))
		chainID := line[21]
		icode := line[26]

		seqNum, err := strconv.Atoi(strings.TrimSpace(str(line, 22, 26)))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad residue sequence number %q",
				name, lineNum, str(line, 22, 26))
		}

		var coords geom.Vec3
		for i, span := range [3][2]int{{30, 38}, {38, 46}, {46, 54}} {
			v, err := strconv.ParseFloat(
				strings.TrimSpace(str(line, span[0], span[1])), 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad coordinate %q",
					name, lineNum, str(line, span[0], span[1]))
			}
			coords[i] = v
		}

		elem := elementOf(line, atomName)

		if cur == nil || cur.Chain != chainID || cur.SeqNum != seqNum ||
			cur.ICode != icode || cur.Name != resName {
			cur = s.AddResidue(chainID, resName, seqNum, icode)
		}
		s.AddAtom(cur, atomName, elem, coords)
	}

	return s, nil
}

// str slices a record without running past short lines.
func str(line []byte, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return string(line[start:end])
}

// elementOf reads the element symbol from columns 77-78, falling back on
// the first letter of the atom name for pre-remediation files.
func elementOf(line []byte, atomName string) string {
	if len(line) >= 78 {
		if e := strings.TrimSpace(str(line, 76, 78)); len(e) > 0 {
			return e
		}
	}
	for i := 0; i < len(atomName); i++ {
		c := atomName[i]
		if c >= 'A' && c <= 'Z' {
			return string(c)
		}
	}
	return ""
}
