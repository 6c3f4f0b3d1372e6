package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyesselm/find-pair-sub012/geom"
	"github.com/jyesselm/find-pair-sub012/pdb"
)

// placeResidue adds a residue whose named atoms sit at the template
// coordinates of tplLetter, moved by the given rotation and shift.
func placeResidue(s *pdb.Structure, resName string, tplLetter byte,
	names []string, rot geom.Mat3, shift geom.Vec3) *pdb.Residue {

	tpl, ok := ByLetter(tplLetter)
	if !ok {
		panic("no such template")
	}
	r := s.AddResidue('A', resName, len(s.Residues)+1, ' ')
	for _, name := range names {
		for _, ta := range tpl.Atoms {
			if ta.Name == name {
				s.AddAtom(r, name, name[:1], rot.MultVec(ta.Coords).Add(shift))
			}
		}
	}
	return r
}

func TestFitRecoversPlacedFrame(t *testing.T) {
	rot := geom.Rotation(geom.Vec3{1, 2, 3}, 77)
	shift := geom.Vec3{10, -4, 25}

	s := pdb.NewStructure("synthetic")
	r := placeResidue(s, "G", 'G', PurineRing, rot, shift)

	fit, ok := NewCalculator().Fit(r)
	require.True(t, ok)
	assert.Equal(t, byte('G'), fit.Letter)
	assert.Equal(t, 9, fit.Matched)
	assert.InDelta(t, 0, fit.RMSD, 1e-9)

	// The frame is the image of the template frame under the motion.
	assert.InDelta(t, 0, fit.Frame.Origin.Dist(shift), 1e-9)
	for i := 0; i < 9; i++ {
		assert.InDelta(t, rot[i], fit.Frame.Rot[i], 1e-9)
	}

	// Columns stay orthonormal.
	assert.InDelta(t, 1, fit.Frame.X().Norm(), 1e-9)
	assert.InDelta(t, 0, fit.Frame.X().Dot(fit.Frame.Y()), 1e-9)
	assert.InDelta(t, 0,
		fit.Frame.X().Cross(fit.Frame.Y()).Dist(fit.Frame.Normal()), 1e-9)
}

func TestFitNeedsThreeAtoms(t *testing.T) {
	s := pdb.NewStructure("synthetic")
	r := placeResidue(s, "A", 'A', []string{"N9", "C8"}, geom.Identity(),
		geom.Vec3{})

	_, ok := NewCalculator().Fit(r)
	assert.False(t, ok, "two matched atoms cannot define a frame")
}

func TestModifiedResidueGate(t *testing.T) {
	calc := NewCalculator()

	// An off-whitelist residue with a perfect purine ring passes the
	// gate and is tagged as a purine.
	s := pdb.NewStructure("synthetic")
	good := placeResidue(s, "XAN", 'G', PurineRing, geom.Identity(),
		geom.Vec3{3, 3, 3})
	fit, ok := calc.Fit(good)
	require.True(t, ok)
	assert.Equal(t, byte('R'), fit.Letter)
	assert.LessOrEqual(t, fit.RMSD, calc.RMSDCutoff)

	// The same ring with its atoms perturbed well past the cutoff is
	// rejected outright.
	bad := s.AddResidue('A', "XAN", 99, ' ')
	tpl, _ := ByLetter('G')
	for i, ta := range tpl.Atoms {
		p := ta.Coords
		// Alternate big out-of-plane displacements to wreck planarity.
		p[2] += 0.8 * float64(1-2*(i%2))
		s.AddAtom(bad, ta.Name, ta.Name[:1], p)
	}
	_, ok = calc.Fit(bad)
	assert.False(t, ok, "badly non-planar ring must fail the RMSD gate")
}

func TestModifiedResidueNeedsRingNitrogen(t *testing.T) {
	s := pdb.NewStructure("synthetic")
	r := placeResidue(s, "LIG", 'C', []string{"C2", "C4", "C5", "C6"},
		geom.Identity(), geom.Vec3{})

	_, ok := NewCalculator().Fit(r)
	assert.False(t, ok, "an all-carbon ring match is not a nucleotide")
}

func TestAssignFrames(t *testing.T) {
	s := pdb.NewStructure("synthetic")
	placeResidue(s, "G", 'G', PurineRing, geom.Identity(), geom.Vec3{})
	placeResidue(s, "C", 'C', PyrimidineRing,
		geom.Rotation(geom.Vec3{0, 0, 1}, 30), geom.Vec3{20, 0, 0})
	s.AddResidue('A', "HOH", 50, ' ') // no atoms at all

	n := NewCalculator().AssignFrames(s)
	assert.Equal(t, 2, n)
	assert.NotNil(t, s.Residues[0].Frame)
	assert.NotNil(t, s.Residues[1].Frame)
	assert.Nil(t, s.Residues[2].Frame)

	// Idempotence: reassigning produces the same frames.
	f0 := *s.Residues[0].Frame
	NewCalculator().AssignFrames(s)
	assert.Equal(t, f0, *s.Residues[0].Frame)
}

func TestTemplatesArePlanar(t *testing.T) {
	for _, letter := range []byte{'A', 'C', 'G', 'T', 'U', 'I'} {
		tpl, ok := ByLetter(letter)
		require.True(t, ok)
		for _, a := range tpl.Atoms {
			// Exactly zero: a stray out-of-plane coordinate shifts every
			// fitted frame and with it the pair scores downstream.
			if a.Coords[2] != 0 {
				t.Fatalf("template %c atom %s is out of plane", letter, a.Name)
			}
		}
	}
}
