package pair

import (
	"math"

	"github.com/jyesselm/find-pair-sub012/geom"
)

// Type is the coarse base-pair classification.
type Type int

const (
	Unclassified Type = iota
	WatsonCrick
	Wobble
)

func (t Type) String() string {
	switch t {
	case WatsonCrick:
		return "watson-crick"
	case Wobble:
		return "wobble"
	}
	return "unclassified"
}

// Geometry holds the six rigid-body parameters relating the two bases
// of a candidate pair, computed in the mid-frame convention with the
// second base's frame flipped into anti-parallel orientation first.
// Translations are in angstroms, rotations in degrees. The classifier
// consumes Shear, Stretch and Opening; the rest ride along for
// diagnostics.
type Geometry struct {
	Shear     float64
	Stretch   float64
	Stagger   float64
	Buckle    float64
	Propeller float64
	Opening   float64
}

// PairGeometry derives the base-pair parameters from two reference
// frames. The second frame's long axis and normal are negated first when
// the normals point away from each other, matching the output
// convention for accepted pairs.
func PairGeometry(f1, f2 geom.Frame) Geometry {
	if f1.Normal().Dot(f2.Normal()) <= 0 {
		f2 = f2.FlipYZ()
	}

	z1, z2 := f1.Normal(), f2.Normal()
	bend := geom.Angle(z1, z2)
	hinge := z1.Cross(z2)

	// Close both frames halfway about the hinge so they share a normal,
	// then measure the in-plane rotation between them.
	t1, t2 := f1.Rot, f2.Rot
	if hinge.Norm() > 1e-12 {
		t1 = geom.Rotation(hinge, bend/2).Mult(f1.Rot)
		t2 = geom.Rotation(hinge, -bend/2).Mult(f2.Rot)
	}
	mz := t1.Col(2)

	opening := geom.SignedAngle(t1.Col(1), t2.Col(1), mz)
	mid := geom.Rotation(mz, opening/2).Mult(t1)

	d := f2.Origin.Sub(f1.Origin)
	g := Geometry{
		Shear:   d.Dot(mid.Col(0)),
		Stretch: d.Dot(mid.Col(1)),
		Stagger: d.Dot(mid.Col(2)),
		Opening: opening,
	}
	if hinge.Norm() > 1e-12 {
		phase := geom.SignedAngle(hinge, mid.Col(1), mz) * math.Pi / 180
		g.Buckle = bend * math.Sin(phase)
		g.Propeller = bend * math.Cos(phase)
	}
	return g
}

// Classification limits. Like the distance thresholds these are the
// reference implementation's empirical constants.
const (
	maxPairStretch = 2.0
	maxPairOpening = 60.0
	maxWCShear     = 2.0
)

// canonical and wobblePairs key on the two one-letter bases in order.
var canonical = map[[2]byte]bool{
	{'A', 'T'}: true, {'T', 'A'}: true,
	{'A', 'U'}: true, {'U', 'A'}: true,
	{'G', 'C'}: true, {'C', 'G'}: true,
	{'I', 'C'}: true, {'C', 'I'}: true,
}

var wobblePairs = map[[2]byte]bool{
	{'G', 'T'}: true, {'T', 'G'}: true,
	{'G', 'U'}: true, {'U', 'G'}: true,
	{'I', 'U'}: true, {'U', 'I'}: true,
	{'I', 'A'}: true, {'A', 'I'}: true,
}

// Classify names a pair Watson-Crick, wobble, or neither from its base
// letters and local geometry. A canonical letter combination that sits
// laterally shifted (large shear) is a wobble pair; non-canonical
// combinations can be wobble only if they are on the known wobble list.
// Unrecognized bases (letter 0) are never classified.
func Classify(b1, b2 byte, g Geometry) Type {
	if math.Abs(g.Stretch) > maxPairStretch ||
		math.Abs(g.Opening) > maxPairOpening {
		return Unclassified
	}
	combo := [2]byte{b1, b2}
	if canonical[combo] {
		if math.Abs(g.Shear) <= maxWCShear {
			return WatsonCrick
		}
		return Wobble
	}
	if wobblePairs[combo] {
		return Wobble
	}
	return Unclassified
}
