/*
Package hbond finds and validates hydrogen bonds between two residues.

Detection is purely geometric over nitrogen/oxygen heavy atoms: any
donor/acceptor-compatible pair whose separation falls inside the
detection window is a candidate. Candidates then go through a
deterministic conflict-resolution step: an atom can serve as the donor
or acceptor of at most one bond, and when several candidates compete for
the same atom only the shortest survives, with exact distance ties
broken by atom serial. The resolution order is fixed because it decides
which bonds feed the base-pair quality score downstream, and that score
must reproduce the reference implementation exactly.
*/
package hbond

import (
	"sort"

	"github.com/jyesselm/find-pair-sub012/pdb"
)

// Default distance bounds, in angstroms. The detection window is wide
// and feeds the coarse pre-filter counts; bonds are only trusted as
// "real" for scoring below GoodDist.
const (
	DefaultMinDist  = 1.8
	DefaultMaxDist  = 4.0
	DefaultGoodDist = 3.6
)

// Validity tags a bond after conflict resolution.
type Validity int

const (
	Invalid Validity = iota
	Confirmed
	Ambiguous
)

func (v Validity) String() string {
	switch v {
	case Confirmed:
		return "confirmed"
	case Ambiguous:
		return "ambiguous"
	}
	return "invalid"
}

// A Bond is one hydrogen bond between atoms of two residues. When the
// donor/acceptor orientation could not be pinned down (both atoms have
// role Either), the lower-serial atom is recorded as the donor and the
// bond is tagged Ambiguous.
type Bond struct {
	Donor    *pdb.Atom
	Acceptor *pdb.Atom
	Distance float64
	Validity Validity

	// SugarEdge is true when at least one end is a sugar or phosphate
	// oxygen rather than a base atom.
	SugarEdge bool
}

// A Detector holds the distance bounds. The zero value is useless; use
// NewDetector.
type Detector struct {
	MinDist  float64
	MaxDist  float64
	GoodDist float64
}

func NewDetector() Detector {
	return Detector{
		MinDist:  DefaultMinDist,
		MaxDist:  DefaultMaxDist,
		GoodDist: DefaultGoodDist,
	}
}

// A Result is the validated bond list for one residue pair plus the
// raw candidate counts. The counts deliberately ignore conflict
// resolution: they are a cheap pre-filter computed from geometry alone.
type Result struct {
	Bonds        []Bond
	NumBaseBase  int
	NumSugarEdge int
}

// GoodBaseBase counts surviving base-base bonds short enough to trust
// for scoring.
func (r Result) GoodBaseBase(maxDist float64) int {
	n := 0
	for _, b := range r.Bonds {
		if !b.SugarEdge && b.Distance <= maxDist {
			n++
		}
	}
	return n
}

// Detect builds the conflict-resolved bond list between two residues.
func (d Detector) Detect(r1, r2 *pdb.Residue) Result {
	var res Result
	var cands []Bond

	for _, a1 := range r1.Atoms {
		role1 := RoleOf(a1)
		if role1 == None {
			continue
		}
		for _, a2 := range r2.Atoms {
			role2 := RoleOf(a2)
			if role2 == None {
				continue
			}
			// Two donors or two acceptors cannot bond.
			if role1 == role2 && role1 != Either {
				continue
			}
			dist := a1.Coords.Dist(a2.Coords)
			if dist < d.MinDist || dist > d.MaxDist {
				continue
			}

			b := orient(a1, role1, a2, role2, dist)
			b.SugarEdge = IsSugarAtom(a1) || IsSugarAtom(a2)
			if b.SugarEdge {
				res.NumSugarEdge++
			} else {
				res.NumBaseBase++
			}
			cands = append(cands, b)
		}
	}

	// Shortest bond wins each contested atom. The sort order is the
	// whole of the determinism guarantee: distance, then the lower of
	// the two serials, then the higher.
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Distance != cands[j].Distance {
			return cands[i].Distance < cands[j].Distance
		}
		li, hi := serials(cands[i])
		lj, hj := serials(cands[j])
		if li != lj {
			return li < lj
		}
		return hi < hj
	})

	used := make(map[int]bool)
	for _, b := range cands {
		if used[b.Donor.Serial] || used[b.Acceptor.Serial] {
			continue
		}
		used[b.Donor.Serial] = true
		used[b.Acceptor.Serial] = true
		res.Bonds = append(res.Bonds, b)
	}
	return res
}

// orient fixes the donor/acceptor assignment of a candidate. At most
// one of the two roles can be Either here; the Either/Either case keeps
// serial order and is tagged Ambiguous.
func orient(a1 *pdb.Atom, role1 Role, a2 *pdb.Atom, role2 Role, dist float64) Bond {
	switch {
	case role1 == Donor || role2 == Acceptor:
		return Bond{Donor: a1, Acceptor: a2, Distance: dist, Validity: Confirmed}
	case role1 == Acceptor || role2 == Donor:
		return Bond{Donor: a2, Acceptor: a1, Distance: dist, Validity: Confirmed}
	}
	donor, acceptor := a1, a2
	if donor.Serial > acceptor.Serial {
		donor, acceptor = acceptor, donor
	}
	return Bond{Donor: donor, Acceptor: acceptor, Distance: dist, Validity: Ambiguous}
}

func serials(b Bond) (lo, hi int) {
	lo, hi = b.Donor.Serial, b.Acceptor.Serial
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}
