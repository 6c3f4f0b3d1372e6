/*
Package frame fits local reference frames to nucleotide residues.

Each recognized base has an idealized, planar ring template expressed in
the standard reference frame. Superposing the template onto a residue's
observed ring atoms (least squares, by atom name) carries the template's
origin and axes into the structure, and that image is the residue's
frame: origin between the base edges, x along the short axis, y along
the long axis, z normal to the base plane.

Residues whose name is not a recognized nucleotide get one chance to
prove themselves: they are fit against both the purine and pyrimidine
rings, and are accepted only when the better fit is tight (RMSD at or
under the cutoff), uses at least three ring atoms, and includes a ring
nitrogen. Everything else stays frame-less and silently drops out of
pairing. A failed fit is never an error.
*/
package frame

import (
	"strings"

	"github.com/jyesselm/find-pair-sub012/geom"
	"github.com/jyesselm/find-pair-sub012/pdb"
)

// DefaultRMSDCutoff is the acceptance gate for residues that are not on
// the recognized-nucleotide whitelist. The value is the reference
// implementation's empirically tuned constant, not something derivable
// from chemistry.
const DefaultRMSDCutoff = 0.2618

// MinRingAtoms is the fewest matched ring atoms a fit may use.
const MinRingAtoms = 3

// A Calculator fits reference frames. The zero value is not useful; use
// NewCalculator for the legacy defaults.
type Calculator struct {
	// RMSDCutoff gates residues not on the whitelist.
	RMSDCutoff float64

	// MinRing is the minimum matched ring atom count.
	MinRing int
}

func NewCalculator() Calculator {
	return Calculator{
		RMSDCutoff: DefaultRMSDCutoff,
		MinRing:    MinRingAtoms,
	}
}

// A Fit is the outcome of a successful frame calculation.
type Fit struct {
	Frame   geom.Frame
	RMSD    float64
	Matched int

	// Letter is the template the residue was fit against. For
	// whitelisted residues it is the residue's own base letter; for
	// accepted unknowns it is 'R' (purine ring) or 'Y' (pyrimidine
	// ring).
	Letter byte
}

// Fit computes a residue's reference frame. The boolean is false when
// the residue cannot be fit: too few matched ring atoms, or an
// off-whitelist residue failing the RMSD gate.
func (c Calculator) Fit(r *pdb.Residue) (Fit, bool) {
	if letter := r.BaseLetter(); letter != 0 {
		tpl, ok := ByLetter(letter)
		if !ok {
			return Fit{}, false
		}
		fit, ok := c.fitTemplate(r, tpl)
		if !ok {
			return Fit{}, false
		}
		fit.Letter = letter
		return fit, true
	}

	// Unrecognized residue name. Fit both ring systems and keep the
	// better one, then apply the acceptance gate.
	var best Fit
	var bestLetter byte
	haveBest := false
	for _, try := range []struct {
		tpl    byte
		letter byte
	}{{'G', 'R'}, {'C', 'Y'}} {
		tpl, _ := ByLetter(try.tpl)
		fit, ok := c.fitTemplate(r, tpl)
		if !ok {
			continue
		}
		if !haveBest || fit.RMSD < best.RMSD {
			best = fit
			bestLetter = try.letter
			haveBest = true
		}
	}
	if !haveBest || best.RMSD > c.RMSDCutoff {
		return Fit{}, false
	}
	if !c.hasRingNitrogen(r, best) {
		return Fit{}, false
	}
	best.Letter = bestLetter
	return best, true
}

// fitTemplate matches atoms by name and superposes the template onto
// the observations. The template is the mobile set: the frame is the
// image of the template's origin and axes in the structure's
// coordinates.
func (c Calculator) fitTemplate(r *pdb.Residue, tpl *Template) (Fit, bool) {
	var mobile, fixed []geom.Vec3
	for _, ta := range tpl.Atoms {
		if a := r.Atom(ta.Name); a != nil {
			mobile = append(mobile, ta.Coords)
			fixed = append(fixed, a.Coords)
		}
	}
	if len(mobile) < c.MinRing {
		return Fit{}, false
	}

	tr := geom.Superpose(mobile, fixed)
	return Fit{
		Frame: geom.Frame{
			Origin: tr.Apply(geom.Vec3{}),
			Rot:    tr.Rot,
		},
		RMSD:    tr.RMSD,
		Matched: len(mobile),
	}, true
}

// hasRingNitrogen reports whether any matched ring atom is a nitrogen.
// Ring atom names are element-prefixed, so the name is enough.
func (c Calculator) hasRingNitrogen(r *pdb.Residue, fit Fit) bool {
	ring := PurineRing
	if fit.Matched <= len(PyrimidineRing) {
		// Could have come from either ring; check every name the
		// residue actually has.
		ring = append(PurineRing[:len(PurineRing):len(PurineRing)],
			PyrimidineRing...)
	}
	for _, name := range ring {
		if strings.HasPrefix(name, "N") && r.Atom(name) != nil {
			return true
		}
	}
	return false
}

// AssignFrames fits every residue in the structure, annotating the ones
// that succeed, and returns how many residues now carry frames. Frames
// already assigned are recomputed; the calculation is deterministic, so
// rerunning is idempotent.
func (c Calculator) AssignFrames(s *pdb.Structure) int {
	n := 0
	for _, r := range s.Residues {
		if fit, ok := c.Fit(r); ok {
			f := fit.Frame
			r.Frame = &f
			n++
		} else {
			r.Frame = nil
		}
	}
	return n
}
