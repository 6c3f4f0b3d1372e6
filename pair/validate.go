package pair

import (
	"math"

	"github.com/jyesselm/find-pair-sub012/geom"
	"github.com/jyesselm/find-pair-sub012/hbond"
	"github.com/jyesselm/find-pair-sub012/pdb"
)

// CandidateInfo is the cached verdict on one unordered residue pair:
// whether the pair is geometrically and chemically eligible, its raw
// and adjusted quality scores (lower is better), and the coarse type.
// Built once, read many times, never mutated afterwards.
type CandidateInfo struct {
	Valid    bool
	Score    float64
	Adjusted float64
	Type     Type

	// The gate quantities, kept for diagnostics.
	DOrg       float64
	DV         float64
	PlaneAngle float64
	DNN        float64

	Geometry Geometry

	// Bonds is the conflict-resolved hydrogen bond list retained for
	// the pair.
	Bonds []hbond.Bond
}

// A Validator decides candidate eligibility and scores candidates. It
// is pure: the same two residues always produce the same verdict.
type Validator struct {
	cfg Config
	det hbond.Detector
}

func NewValidator(cfg Config) *Validator {
	return &Validator{cfg: cfg, det: cfg.detector()}
}

// Check evaluates one ordered residue pair. Same-residue input or a
// residue without a frame is invalid immediately, with no geometry
// computed.
func (v *Validator) Check(r1, r2 *pdb.Residue) CandidateInfo {
	if r1 == r2 || r1.Frame == nil || r2.Frame == nil {
		return CandidateInfo{}
	}
	f1, f2 := *r1.Frame, *r2.Frame
	var ci CandidateInfo

	// The gates run cheapest first; each failure returns the zero
	// (invalid) verdict with the measured quantities filled in as far
	// as the evaluation got.
	ci.DOrg = f1.Origin.Dist(f2.Origin)
	if ci.DOrg > v.cfg.MaxDOrg {
		return ci
	}

	// Vertical displacement along the mean normal, with the second
	// normal flipped into the first's hemisphere.
	n1, n2 := f1.Normal(), f2.Normal()
	if n1.Dot(n2) < 0 {
		n2 = n2.Scale(-1)
	}
	d := f2.Origin.Sub(f1.Origin)
	ci.DV = math.Abs(d.Dot(n1.Add(n2).Unit()))
	if ci.DV > v.cfg.MaxDV {
		return ci
	}

	// Angle between base planes, folded into [0, 90].
	ang := geom.Angle(f1.Normal(), f2.Normal())
	if ang > 90 {
		ang = 180 - ang
	}
	ci.PlaneAngle = ang
	if ang > v.cfg.MaxPlaneAngle {
		return ci
	}

	gn1, gn2 := r1.GlycosidicN(), r2.GlycosidicN()
	if gn1 == nil || gn2 == nil {
		return ci
	}
	ci.DNN = gn1.Coords.Dist(gn2.Coords)
	if ci.DNN < v.cfg.MinDNN || ci.DNN > v.cfg.MaxDNN {
		return ci
	}

	hb := v.det.Detect(r1, r2)
	if hb.NumBaseBase < v.cfg.MinBaseHB &&
		!(hb.NumBaseBase == 0 && hb.NumSugarEdge > 0) {
		return ci
	}
	ci.Bonds = hb.Bonds

	ci.Score = ci.DOrg + 2*ci.DV + ci.PlaneAngle/20

	b1, b2 := r1.BaseLetter(), r2.BaseLetter()
	ci.Geometry = PairGeometry(f1, f2)
	ci.Type = Classify(b1, b2, ci.Geometry)

	ci.Adjusted = ci.Score + hbAdjustment(b1, b2, hb, v.cfg.HBGoodDist)
	if ci.Type != Unclassified {
		ci.Adjusted -= v.cfg.CanonicalDiscount
	}

	ci.Valid = true
	return ci
}

// expectedBonds is the number of base-base hydrogen bonds an ideal pair
// of the given letter combination forms.
func expectedBonds(b1, b2 byte) int {
	combo := [2]byte{b1, b2}
	switch {
	case combo == [2]byte{'G', 'C'} || combo == [2]byte{'C', 'G'}:
		return 3
	case canonical[combo] || wobblePairs[combo]:
		return 2
	}
	return 1
}

// hbAdjustment rewards candidates whose confirmed base-base bonds match
// the donor/acceptor pattern expected for the base combination and
// penalizes missing or surplus bonds. Ambiguous bonds earn nothing:
// their orientation is guessed, so they cannot confirm a pattern.
func hbAdjustment(b1, b2 byte, hb hbond.Result, goodDist float64) float64 {
	n := 0
	for _, b := range hb.Bonds {
		if b.Validity == hbond.Confirmed && !b.SugarEdge &&
			b.Distance <= goodDist {
			n++
		}
	}
	want := expectedBonds(b1, b2)

	adj := -0.5 * float64(min(n, want))
	if n < want {
		adj += 0.25 * float64(want-n)
	} else if n > want {
		adj += 0.25 * float64(n-want)
	}
	return adj
}
